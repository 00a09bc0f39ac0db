package app

import (
	"fmt"
	"time"
)

// EventKind classifies an inbound chat event.
type EventKind string

const (
	EventStart        EventKind = "start"
	EventCheckIn      EventKind = "check_in"
	EventCheckOut     EventKind = "check_out"
	EventQuery        EventKind = "query"
	EventUnrecognized EventKind = "unrecognized"
)

type RangeKind string

const (
	RangeToday             RangeKind = "today"
	RangeLastNDays         RangeKind = "last_n_days"
	RangeAllTime           RangeKind = "all_time"
	RangeAllUsersLastNDays RangeKind = "all_users_last_n_days"
)

// Range is the aggregation window of a query. Days is set for the
// LastNDays kinds only.
type Range struct {
	Kind RangeKind
	Days int
}

func Today() Range { return Range{Kind: RangeToday} }

func AllTime() Range { return Range{Kind: RangeAllTime} }

func LastNDays(n int) Range { return Range{Kind: RangeLastNDays, Days: n} }

func AllUsersLastNDays(n int) Range { return Range{Kind: RangeAllUsersLastNDays, Days: n} }

func (r Range) String() string {
	switch r.Kind {
	case RangeLastNDays, RangeAllUsersLastNDays:
		return fmt.Sprintf("%s(%d)", r.Kind, r.Days)
	default:
		return string(r.Kind)
	}
}

// Event is a classified inbound message. Now is the local time the event
// was received; ID correlates log lines and is filled in when empty.
type Event struct {
	ID       string
	UserID   int64
	UserName string
	Kind     EventKind
	Range    Range
	Now      time.Time
}
