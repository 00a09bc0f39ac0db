package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/repository"
)

type statsService struct {
	records repository.WorkRecordRepo
	adminID int64
	loc     *time.Location
}

// NewStatsService builds the read side. An adminID of zero disables the
// cross-user report.
func NewStatsService(records repository.WorkRecordRepo, adminID int64, loc *time.Location) StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &statsService{records: records, adminID: adminID, loc: loc}
}

func (s *statsService) IsAdmin(userID int64) bool {
	return s.adminID != 0 && userID == s.adminID
}

func (s *statsService) Today(ctx context.Context, userID int64, now time.Time) (app.Result, error) {
	date := now.In(s.loc).Format(domain.DateLayout)
	records, err := s.records.ListByUserOnDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return app.NoRecordsFound{Range: app.Today()}, nil
	}

	entries := make([]app.TodayEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, app.TodayEntry{CheckIn: r.CheckIn, CheckOut: r.CheckOut, HoursWorked: r.HoursWorked})
	}
	return app.TodaySummary{
		Date:       date,
		Entries:    entries,
		TotalHours: domain.AggregateUser(records).TotalHours,
	}, nil
}

func (s *statsService) Range(ctx context.Context, userID int64, rng app.Range, now time.Time) (app.Result, error) {
	var since string
	switch rng.Kind {
	case app.RangeAllTime:
	case app.RangeLastNDays:
		since = domain.WindowStart(now.In(s.loc), rng.Days)
	default:
		return nil, fmt.Errorf("range %s is not a per-user window", rng)
	}

	records, err := s.records.ListByUser(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return app.NoRecordsFound{Range: rng}, nil
	}

	totals := domain.AggregateUser(records)
	summary := app.RangeSummary{
		Range:       rng,
		TotalHours:  totals.TotalHours,
		DaysWorked:  totals.DaysWorked,
		OpenRecords: totals.OpenCount,
	}
	for _, r := range records {
		if r.HoursWorked != nil {
			summary.Lines = append(summary.Lines, app.DayLine{Date: r.Date, Hours: *r.HoursWorked})
		}
	}
	if avg, ok := totals.AverageHoursPerDay(); ok {
		summary.AvgHoursPerDay = &avg
	}
	return summary, nil
}

func (s *statsService) AllUsers(ctx context.Context, requesterID int64, days int, now time.Time) (app.Result, error) {
	if !s.IsAdmin(requesterID) {
		return nil, fmt.Errorf("user %d requested all-users report: %w", requesterID, domain.ErrUnauthorized)
	}

	summaries, err := s.records.AggregateAllUsers(ctx, domain.WindowStart(now.In(s.loc), days))
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return app.NoRecordsFound{Range: app.AllUsersLastNDays(days)}, nil
	}
	domain.SortByTotalHours(summaries)
	return app.AllUsersSummary{Days: days, Entries: summaries}, nil
}
