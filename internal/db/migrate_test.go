package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnNames(t *testing.T, database *sql.DB, table string) []string {
	t.Helper()
	rows, err := database.Query(`SELECT name FROM pragma_table_info(?)`, table)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestOpenDB_CreatesWorkRecords(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	assert.Equal(t,
		[]string{"id", "user_id", "user_name", "date", "check_in", "check_out", "hours_worked", "checked_in_at"},
		columnNames(t, database, "work_records"))
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

// Databases created before checked_in_at existed lack the column.
// Its rows must survive and the column must be added empty.
func TestMigrate_UpgradesLegacyDatabase(t *testing.T) {
	database, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`CREATE TABLE work_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		user_name TEXT,
		date TEXT,
		check_in TEXT,
		check_out TEXT,
		hours_worked REAL
	)`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO work_records (user_id, user_name, date, check_in, check_out, hours_worked)
		VALUES (7, 'Taras', '2025-11-03', '09:00', '18:00', 9.0)`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	assert.Contains(t, columnNames(t, database, "work_records"), "checked_in_at")

	var name string
	var hours float64
	var checkedInAt sql.NullString
	err = database.QueryRow(`SELECT user_name, hours_worked, checked_in_at FROM work_records WHERE user_id = 7`).
		Scan(&name, &hours, &checkedInAt)
	require.NoError(t, err)
	assert.Equal(t, "Taras", name)
	assert.Equal(t, 9.0, hours)
	assert.False(t, checkedInAt.Valid)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/worktime.db"
	database, err := OpenDB(path)
	require.NoError(t, err)
	require.NoError(t, database.Close())
	assert.FileExists(t, path)
}
