package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConcurrentTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool, which is required to test real concurrent access with WAL mode.
func newConcurrentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "concurrent_test.db"))
	require.NoError(t, err, "failed to create concurrent test database")
	t.Cleanup(func() { database.Close() })
	return database
}

// TestConcurrentAccess_ReadDuringWrite runs check-in/check-out writers for
// several users while readers aggregate the table.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := newConcurrentTestDB(t)
	repo := NewSQLiteWorkRecordRepo(database)
	ctx := context.Background()

	const users, shifts = 4, 10
	var wg sync.WaitGroup

	for u := 1; u <= users; u++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			for i := 0; i < shifts; i++ {
				rec := testutil.NewTestRecord(userID, "worker", testutil.OnDay(-i, 9, 0))
				if err := repo.AppendCheckIn(ctx, rec); err != nil {
					t.Errorf("user %d: append shift %d: %v", userID, i, err)
					return
				}
				if err := repo.CloseByID(ctx, rec.ID, "17:00", 8); err != nil {
					t.Errorf("user %d: close shift %d: %v", userID, i, err)
					return
				}
			}
		}(int64(u))
	}

	for r := 0; r < 3; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if _, err := repo.AggregateAllUsers(ctx, ""); err != nil {
					t.Errorf("reader %d: aggregate: %v", reader, err)
					return
				}
			}
		}(r)
	}

	wg.Wait()

	summaries, err := repo.AggregateAllUsers(ctx, "")
	require.NoError(t, err)
	require.Len(t, summaries, users)
	for _, s := range summaries {
		assert.Equal(t, float64(8*shifts), s.TotalHours)
		assert.Equal(t, shifts, s.DaysWorked)
	}

	open, err := repo.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}
