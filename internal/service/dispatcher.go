package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/google/uuid"
)

// Dispatcher routes classified events to the attendance and stats services
// and folds user-facing failures into Result values.
type Dispatcher struct {
	attendance AttendanceService
	stats      StatsService
	observer   UseCaseObserver
	clock      func() time.Time
}

var _ app.EventHandler = (*Dispatcher)(nil)

func NewDispatcher(attendance AttendanceService, stats StatsService, observers ...UseCaseObserver) *Dispatcher {
	return &Dispatcher{
		attendance: attendance,
		stats:      stats,
		observer:   useCaseObserverOrNoop(observers),
		clock:      time.Now,
	}
}

func (d *Dispatcher) Handle(ctx context.Context, ev app.Event) (app.Result, error) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Now.IsZero() {
		ev.Now = d.clock()
	}

	startedAt := time.Now()
	res, err := d.route(ctx, ev)
	d.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      useCaseName(ev),
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields: map[string]any{
			"event_id": ev.ID,
			"user_id":  ev.UserID,
		},
	})

	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, domain.ErrNotCheckedIn):
		return app.NotCheckedInError{}, nil
	case errors.Is(err, domain.ErrUnauthorized):
		return app.Unauthorized{}, nil
	default:
		return nil, err
	}
}

func (d *Dispatcher) route(ctx context.Context, ev app.Event) (app.Result, error) {
	switch ev.Kind {
	case app.EventStart:
		return app.Help{UserID: ev.UserID, UserName: ev.UserName, IsAdmin: d.stats.IsAdmin(ev.UserID)}, nil
	case app.EventCheckIn:
		res, err := d.attendance.CheckIn(ctx, ev.UserID, ev.UserName, ev.Now)
		if err != nil {
			return nil, err
		}
		return *res, nil
	case app.EventCheckOut:
		res, err := d.attendance.CheckOut(ctx, ev.UserID, ev.Now)
		if err != nil {
			return nil, err
		}
		return *res, nil
	case app.EventQuery:
		return d.query(ctx, ev)
	case app.EventUnrecognized:
		return app.Unrecognized{}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}

func (d *Dispatcher) query(ctx context.Context, ev app.Event) (app.Result, error) {
	switch ev.Range.Kind {
	case app.RangeToday:
		return d.stats.Today(ctx, ev.UserID, ev.Now)
	case app.RangeLastNDays, app.RangeAllTime:
		return d.stats.Range(ctx, ev.UserID, ev.Range, ev.Now)
	case app.RangeAllUsersLastNDays:
		return d.stats.AllUsers(ctx, ev.UserID, ev.Range.Days, ev.Now)
	default:
		return nil, fmt.Errorf("unknown range kind %q", ev.Range.Kind)
	}
}

func useCaseName(ev app.Event) string {
	if ev.Kind == app.EventQuery {
		return "query." + string(ev.Range.Kind)
	}
	return string(ev.Kind)
}
