package testutil

import (
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
)

// Day is the fixed calendar day most fixtures are anchored to.
var Day = time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

// At returns hh:mm on Day, or on a day offset from it.
func At(hour, min int) time.Time {
	return Day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// OnDay returns hh:mm on the day offset days from Day.
func OnDay(offset, hour, min int) time.Time {
	return At(hour, min).AddDate(0, 0, offset)
}

type RecordOption func(*domain.WorkRecord)

// WithClosed marks the fixture closed at the given time with hours worked
// computed from its check-in.
func WithClosed(out time.Time) RecordOption {
	return func(r *domain.WorkRecord) {
		checkOut := out.Format(domain.TimeLayout)
		hours := domain.HoursBetween(r.CheckedInAt, out)
		r.CheckOut = &checkOut
		r.HoursWorked = &hours
	}
}

// WithHours marks the fixture closed with an explicit hour count.
func WithHours(h float64) RecordOption {
	return func(r *domain.WorkRecord) {
		checkOut := "18:00"
		r.CheckOut = &checkOut
		r.HoursWorked = &h
	}
}

func WithoutInstant() RecordOption {
	return func(r *domain.WorkRecord) {
		r.CheckedInAt = time.Time{}
	}
}

func NewTestRecord(userID int64, name string, checkIn time.Time, opts ...RecordOption) *domain.WorkRecord {
	r := domain.NewWorkRecord(userID, name, checkIn)
	for _, opt := range opts {
		opt(r)
	}
	return r
}
