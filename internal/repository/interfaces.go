package repository

import (
	"context"

	"github.com/alexanderramin/worktime/internal/domain"
)

// WorkRecordRepo is the durable record store. Date arguments use
// domain.DateLayout; an empty since means all time.
type WorkRecordRepo interface {
	// AppendCheckIn inserts an open record and assigns its ID.
	AppendCheckIn(ctx context.Context, r *domain.WorkRecord) error

	// CloseOpen closes the most recently inserted open record of userID on
	// date and returns its ID. It fails with domain.ErrInconsistentState
	// when there is none.
	CloseOpen(ctx context.Context, userID int64, date, checkOut string, hours float64) (int64, error)

	// CloseByID closes the given record. It fails with
	// domain.ErrInconsistentState when the record is missing or closed.
	CloseByID(ctx context.Context, id int64, checkOut string, hours float64) error

	GetByID(ctx context.Context, id int64) (*domain.WorkRecord, error)

	// ListByUser returns records newest first: date DESC, check_in DESC.
	ListByUser(ctx context.Context, userID int64, since string) ([]*domain.WorkRecord, error)

	// ListByUserOnDate returns one day's records in insertion order.
	ListByUserOnDate(ctx context.Context, userID int64, date string) ([]*domain.WorkRecord, error)

	// ListOpen returns every open record in insertion order.
	ListOpen(ctx context.Context) ([]*domain.WorkRecord, error)

	// AggregateAllUsers totals closed records per (user_id, user_name),
	// highest total first.
	AggregateAllUsers(ctx context.Context, since string) ([]domain.UserSummary, error)
}
