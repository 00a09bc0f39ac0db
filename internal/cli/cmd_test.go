package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/alexanderramin/worktime/internal/testutil"
	"github.com/alexanderramin/worktime/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminID = 1000

// testApp wires a full App backed by an in-memory DB with a settable clock.
func testApp(t *testing.T) (*App, *time.Time) {
	t.Helper()
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteWorkRecordRepo(database)

	attendance := service.NewAttendanceService(records, tracker.NewMemoryTracker(), testutil.NewTestUoW(database),
		service.WithLocation(time.UTC))
	stats := service.NewStatsService(records, adminID, time.UTC)

	now := testutil.At(9, 0)
	return &App{
		Events:     service.NewDispatcher(attendance, stats),
		Attendance: attendance,
		Location:   time.UTC,
		Now:        func() time.Time { return now },
	}, &now
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app, _ := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "worktime")
	assert.Contains(t, output, "come")
}

func TestComeEnd_Workday(t *testing.T) {
	app, now := testApp(t)

	out, err := executeCmd(t, app, "come", "--user", "42", "--name", "Olena")
	require.NoError(t, err)
	assert.Contains(t, out, "CHECKED IN")
	assert.Contains(t, out, "09:00")

	*now = testutil.At(17, 30)
	out, err = executeCmd(t, app, "end", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "worked 8.5 h")

	out, err = executeCmd(t, app, "today", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 8.5 h")
}

func TestEnd_WithoutCome(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "end", "--user", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotCheckedIn))
}

func TestCommands_RequireUser(t *testing.T) {
	app, _ := testApp(t)

	for _, name := range []string{"come", "end", "today", "week", "month", "stats", "all"} {
		t.Run(name, func(t *testing.T) {
			_, err := executeCmd(t, app, name)
			require.ErrorIs(t, err, errNoUser)
		})
	}
}

func TestStats_DaysFlag(t *testing.T) {
	app, now := testApp(t)

	_, err := executeCmd(t, app, "come", "-u", "42", "-n", "Olena")
	require.NoError(t, err)
	*now = testutil.At(13, 0)
	_, err = executeCmd(t, app, "end", "-u", "42")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "stats", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "ALL TIME")
	assert.Contains(t, out, "4 h")

	out, err = executeCmd(t, app, "stats", "-u", "42", "--days", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "LAST 3 DAYS")

	_, err = executeCmd(t, app, "stats", "-u", "42", "--days", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --days")
}

func TestWeekAndMonth_NoRecords(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app, "week", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "No records for last 7 days.")

	out, err = executeCmd(t, app, "month", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "No records for last 30 days.")
}

func TestAll_AdminOnly(t *testing.T) {
	app, now := testApp(t)

	_, err := executeCmd(t, app, "come", "-u", "42", "-n", "Olena")
	require.NoError(t, err)
	*now = testutil.At(15, 0)
	_, err = executeCmd(t, app, "end", "-u", "42")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "all", "-u", "42")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := executeCmd(t, app, "all", "-u", "1000", "--days", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "ALL USERS, LAST 7 DAYS")
	assert.Contains(t, out, "Olena")
	assert.Contains(t, out, "6 h")
}

func TestOpen_ListsOpenRecords(t *testing.T) {
	app, now := testApp(t)

	out, err := executeCmd(t, app, "open")
	require.NoError(t, err)
	assert.Contains(t, out, "No open records.")

	_, err = executeCmd(t, app, "come", "-u", "42", "-n", "Olena")
	require.NoError(t, err)
	*now = testutil.At(10, 30)

	out, err = executeCmd(t, app, "open")
	require.NoError(t, err)
	assert.Contains(t, out, "OPEN RECORDS (1)")
	assert.Contains(t, out, "Olena")
	assert.Contains(t, out, "1.5 h")
}

func TestServe_CallsHook(t *testing.T) {
	app, _ := testApp(t)

	_, err := executeCmd(t, app, "serve")
	require.Error(t, err)

	var called bool
	app.Serve = func(ctx context.Context) error {
		called = true
		assert.NotNil(t, ctx)
		return nil
	}
	_, err = executeCmd(t, app, "serve")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestInteractiveOutputIsBoxed(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return true }

	out, err := executeCmd(t, app, "come", "-u", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
}
