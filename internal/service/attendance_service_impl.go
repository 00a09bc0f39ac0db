package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/tracker"
	"go.uber.org/zap"
)

type attendanceService struct {
	records repository.WorkRecordRepo
	tracker tracker.Tracker
	uow     db.UnitOfWork
	locks   *userLocks
	match   domain.CheckoutMatch
	loc     *time.Location
	logger  *zap.Logger
}

type AttendanceOption func(*attendanceService)

func WithCheckoutMatch(m domain.CheckoutMatch) AttendanceOption {
	return func(s *attendanceService) { s.match = m }
}

// WithLocation sets the timezone record dates and times are written in.
func WithLocation(loc *time.Location) AttendanceOption {
	return func(s *attendanceService) { s.loc = loc }
}

func WithLogger(logger *zap.Logger) AttendanceOption {
	return func(s *attendanceService) { s.logger = logger }
}

func NewAttendanceService(records repository.WorkRecordRepo, tr tracker.Tracker, uow db.UnitOfWork, opts ...AttendanceOption) AttendanceService {
	s := &attendanceService{
		records: records,
		tracker: tr,
		uow:     uow,
		locks:   newUserLocks(),
		match:   domain.MatchRecord,
		loc:     time.Local,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckIn appends an open record and then points the tracker at it. A
// failed append leaves the tracker untouched. A previous open record of
// the same user stays open in the store.
func (s *attendanceService) CheckIn(ctx context.Context, userID int64, userName string, now time.Time) (*app.CheckInConfirmed, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	local := now.In(s.loc)
	rec := domain.NewWorkRecord(userID, userName, local)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWorkRecordRepo(tx).AppendCheckIn(ctx, rec)
	})
	if err != nil {
		return nil, fmt.Errorf("recording check-in: %w", err)
	}

	if prev, ok := s.tracker.Open(userID); ok {
		s.logger.Warn("check-in replaces open session",
			zap.Int64("user_id", userID),
			zap.Int64("orphaned_record_id", prev.RecordID),
			zap.Time("orphaned_since", prev.CheckedInAt),
		)
	}
	s.tracker.CheckIn(domain.OpenEntry{UserID: userID, RecordID: rec.ID, CheckedInAt: local})

	return &app.CheckInConfirmed{RecordID: rec.ID, Date: rec.Date, Time: rec.CheckIn}, nil
}

// CheckOut closes the user's open record. The tracker entry is removed only
// after the store update commits.
func (s *attendanceService) CheckOut(ctx context.Context, userID int64, now time.Time) (*app.CheckOutConfirmed, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	entry, ok := s.tracker.Open(userID)
	if !ok {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotCheckedIn)
	}

	local := now.In(s.loc)
	hours := domain.HoursBetween(entry.CheckedInAt, local)
	checkOut := local.Format(domain.TimeLayout)

	byRecord := s.match == domain.MatchRecord && entry.RecordID != 0

	var recordID int64
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteWorkRecordRepo(tx)
		if byRecord {
			recordID = entry.RecordID
			return repo.CloseByID(ctx, entry.RecordID, checkOut, hours)
		}
		id, err := repo.CloseOpen(ctx, userID, local.Format(domain.DateLayout), checkOut, hours)
		recordID = id
		return err
	})
	if err != nil {
		// The referenced record was closed elsewhere, e.g. by another
		// process sharing the database. The entry can never succeed.
		if byRecord && errors.Is(err, domain.ErrInconsistentState) {
			_, _, _ = s.tracker.CheckOut(userID, local)
			s.logger.Warn("dropped stale open session",
				zap.Int64("user_id", userID),
				zap.Int64("record_id", entry.RecordID),
			)
		}
		return nil, fmt.Errorf("recording check-out: %w", err)
	}

	if _, _, err := s.tracker.CheckOut(userID, local); err != nil {
		return nil, err
	}

	return &app.CheckOutConfirmed{RecordID: recordID, Time: checkOut, HoursWorked: hours}, nil
}

func (s *attendanceService) Recover(ctx context.Context) (int, error) {
	open, err := s.records.ListOpen(ctx)
	if err != nil {
		return 0, fmt.Errorf("recovering open sessions: %w", err)
	}

	// Rows come in insertion order, so the newest open record per user wins.
	latest := make(map[int64]domain.OpenEntry)
	for _, r := range open {
		at, err := r.CheckInInstant(s.loc)
		if err != nil {
			s.logger.Warn("skipping unreadable open record", zap.Int64("record_id", r.ID), zap.Error(err))
			continue
		}
		latest[r.UserID] = domain.OpenEntry{UserID: r.UserID, RecordID: r.ID, CheckedInAt: at}
	}

	entries := make([]domain.OpenEntry, 0, len(latest))
	for _, e := range latest {
		entries = append(entries, e)
	}
	s.tracker.Restore(entries)

	if orphaned := len(open) - len(entries); orphaned > 0 {
		s.logger.Info("open records left unreachable", zap.Int("count", orphaned))
	}
	return len(entries), nil
}

func (s *attendanceService) OpenRecords(ctx context.Context) ([]*domain.WorkRecord, error) {
	return s.records.ListOpen(ctx)
}
