package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and hooks CLI commands run against.
type App struct {
	Events     app.EventHandler
	Attendance service.AttendanceService

	// Serve runs the chat bot until ctx is cancelled.
	Serve func(ctx context.Context) error

	// Location is the timezone open-record durations are computed in.
	Location *time.Location

	IsInteractive func() bool
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

// NewRootCmd creates the top-level "worktime" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "worktime",
		Short:        "Chat-driven attendance tracker",
		SilenceUsage: true,
	}

	id := &identity{}
	addIdentityFlags(root.PersistentFlags(), id)

	root.AddCommand(
		newServeCmd(app),
		newComeCmd(app, id),
		newEndCmd(app, id),
		newTodayCmd(app, id),
		newWeekCmd(app, id),
		newMonthCmd(app, id),
		newStatsCmd(app, id),
		newAllCmd(app, id),
		newOpenCmd(app),
	)

	return root
}
