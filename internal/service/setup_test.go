package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/testutil"
	"github.com/alexanderramin/worktime/internal/tracker"
)

const (
	adminID = int64(1000)
	olena   = int64(42)
	taras   = int64(43)
)

type fixture struct {
	db       *sql.DB
	records  *repository.SQLiteWorkRecordRepo
	tracker  *tracker.MemoryTracker
	uow      db.UnitOfWork
	attend   AttendanceService
	stats    StatsService
	dispatch *Dispatcher
}

func setupServices(t *testing.T, opts ...AttendanceOption) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return setupServicesWithUoW(t, database, testutil.NewTestUoW(database), opts...)
}

func setupServicesWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork, opts ...AttendanceOption) *fixture {
	t.Helper()
	records := repository.NewSQLiteWorkRecordRepo(database)
	tr := tracker.NewMemoryTracker()
	opts = append([]AttendanceOption{WithLocation(time.UTC)}, opts...)

	f := &fixture{
		db:      database,
		records: records,
		tracker: tr,
		uow:     uow,
		attend:  NewAttendanceService(records, tr, uow, opts...),
		stats:   NewStatsService(records, adminID, time.UTC),
	}
	f.dispatch = NewDispatcher(f.attend, f.stats)
	return f
}
