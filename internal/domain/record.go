package domain

import (
	"fmt"
	"time"
)

// Layouts used for the denormalized date and time-of-day columns.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// WorkRecord is one check-in event and, once closed, its check-out.
// A record is created Open and transitions to Closed exactly once.
type WorkRecord struct {
	ID          int64
	UserID      int64
	UserName    string
	Date        string
	CheckIn     string
	CheckOut    *string
	HoursWorked *float64

	// CheckedInAt is the precise check-in instant. Records written before
	// the column existed carry only Date and CheckIn.
	CheckedInAt time.Time
}

// NewWorkRecord builds an open record for a check-in at the given local time.
func NewWorkRecord(userID int64, userName string, at time.Time) *WorkRecord {
	return &WorkRecord{
		UserID:      userID,
		UserName:    userName,
		Date:        at.Format(DateLayout),
		CheckIn:     at.Format(TimeLayout),
		CheckedInAt: at,
	}
}

func (r *WorkRecord) IsOpen() bool {
	return r.CheckOut == nil
}

// Close records the check-out. Closing a closed record is an inconsistency.
func (r *WorkRecord) Close(checkOut string, hours float64) error {
	if !r.IsOpen() {
		return fmt.Errorf("work record %d already closed at %s: %w", r.ID, *r.CheckOut, ErrInconsistentState)
	}
	r.CheckOut = &checkOut
	r.HoursWorked = &hours
	return nil
}

// CheckInInstant returns when the record was opened. Legacy rows without a
// stored instant are reconstructed from Date and CheckIn in loc.
func (r *WorkRecord) CheckInInstant(loc *time.Location) (time.Time, error) {
	if !r.CheckedInAt.IsZero() {
		return r.CheckedInAt, nil
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.CheckIn, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing check-in of record %d: %w", r.ID, err)
	}
	return t, nil
}

// OpenEntry is the tracker's view of a user's current work session.
type OpenEntry struct {
	UserID      int64
	RecordID    int64
	CheckedInAt time.Time
}
