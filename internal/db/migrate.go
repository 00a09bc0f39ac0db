package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// whole list is replayed on every start.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Legacy column set; existing attendance databases open in place.
	`CREATE TABLE IF NOT EXISTS work_records (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      INTEGER,
		user_name    TEXT,
		date         TEXT,
		check_in     TEXT,
		check_out    TEXT,
		hours_worked REAL
	)`,

	// Precise check-in instant, used to rebuild open sessions after restart.
	`ALTER TABLE work_records ADD COLUMN checked_in_at TEXT`,

	`CREATE INDEX IF NOT EXISTS idx_work_records_user_date ON work_records(user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_work_records_date ON work_records(date)`,
	`CREATE INDEX IF NOT EXISTS idx_work_records_open ON work_records(user_id) WHERE check_out IS NULL`,
}
