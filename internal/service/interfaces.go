package service

import (
	"context"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
)

type AttendanceService interface {
	app.CheckInUseCase
	app.CheckOutUseCase

	// Recover rebuilds the tracker from open records in the store and
	// returns how many users are checked in.
	Recover(ctx context.Context) (int, error)

	OpenRecords(ctx context.Context) ([]*domain.WorkRecord, error)
}

type StatsService interface {
	// Today returns a TodaySummary or NoRecordsFound.
	Today(ctx context.Context, userID int64, now time.Time) (app.Result, error)

	// Range returns a RangeSummary or NoRecordsFound for LastNDays and
	// AllTime ranges.
	Range(ctx context.Context, userID int64, rng app.Range, now time.Time) (app.Result, error)

	// AllUsers returns an AllUsersSummary or NoRecordsFound. Callers other
	// than the admin get domain.ErrUnauthorized.
	AllUsers(ctx context.Context, requesterID int64, days int, now time.Time) (app.Result, error)

	IsAdmin(userID int64) bool
}
