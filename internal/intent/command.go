package intent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/worktime/internal/app"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid command argument")
)

// Window lengths of the fixed-range commands.
const (
	WeekDays     = 7
	MonthDays    = 30
	AllUsersDays = 30
	MaxDays      = 3660
)

// Command is a parsed slash command.
type Command struct {
	Kind  app.EventKind
	Range app.Range
}

// ParseCommand parses a command name (without the leading slash or bot
// suffix) and its argument string.
//
//	/start /help      usage
//	/come /end        check in, check out
//	/today            today's records
//	/week /month      last 7 / 30 days
//	/stats [days]     all time, or the last N days
//	/all [days]       every user, last 30 or N days (admin only)
func ParseCommand(name, args string) (Command, error) {
	args = strings.TrimSpace(args)
	switch strings.ToLower(name) {
	case "start", "help":
		return Command{Kind: app.EventStart}, nil
	case "come":
		return Command{Kind: app.EventCheckIn}, nil
	case "end":
		return Command{Kind: app.EventCheckOut}, nil
	case "today":
		return Command{Kind: app.EventQuery, Range: app.Today()}, nil
	case "week":
		return Command{Kind: app.EventQuery, Range: app.LastNDays(WeekDays)}, nil
	case "month":
		return Command{Kind: app.EventQuery, Range: app.LastNDays(MonthDays)}, nil
	case "stats":
		if args == "" {
			return Command{Kind: app.EventQuery, Range: app.AllTime()}, nil
		}
		n, err := parseDays(args)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: app.EventQuery, Range: app.LastNDays(n)}, nil
	case "all":
		n := AllUsersDays
		if args != "" {
			var err error
			if n, err = parseDays(args); err != nil {
				return Command{}, err
			}
		}
		return Command{Kind: app.EventQuery, Range: app.AllUsersLastNDays(n)}, nil
	default:
		return Command{}, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
}

func parseDays(s string) (int, error) {
	n, err := strconv.Atoi(strings.Fields(s)[0])
	if err != nil || n < 1 || n > MaxDays {
		return 0, fmt.Errorf("days must be between 1 and %d, got %q: %w", MaxDays, s, ErrInvalidArgument)
	}
	return n, nil
}
