package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/domain"
)

const workRecordColumns = `id, COALESCE(user_id, 0), COALESCE(user_name, ''), COALESCE(date, ''),
	COALESCE(check_in, ''), check_out, hours_worked, checked_in_at`

// SQLiteWorkRecordRepo implements WorkRecordRepo on the work_records table.
type SQLiteWorkRecordRepo struct {
	db db.DBTX
}

func NewSQLiteWorkRecordRepo(conn db.DBTX) *SQLiteWorkRecordRepo {
	return &SQLiteWorkRecordRepo{db: conn}
}

func (r *SQLiteWorkRecordRepo) AppendCheckIn(ctx context.Context, rec *domain.WorkRecord) error {
	query := `INSERT INTO work_records (user_id, user_name, date, check_in, checked_in_at)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.UserID,
		rec.UserName,
		rec.Date,
		rec.CheckIn,
		nullableTimeToString(rec.CheckedInAt),
	)
	if err != nil {
		return storageErr("inserting work record", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storageErr("reading work record id", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteWorkRecordRepo) CloseOpen(ctx context.Context, userID int64, date, checkOut string, hours float64) (int64, error) {
	query := `SELECT id FROM work_records
		WHERE user_id = ? AND date = ? AND check_out IS NULL
		ORDER BY id DESC LIMIT 1`
	var id int64
	err := r.db.QueryRowContext(ctx, query, userID, date).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("no open record for user %d on %s: %w", userID, date, domain.ErrInconsistentState)
		}
		return 0, storageErr("finding open work record", err)
	}
	if err := r.CloseByID(ctx, id, checkOut, hours); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQLiteWorkRecordRepo) CloseByID(ctx context.Context, id int64, checkOut string, hours float64) error {
	query := `UPDATE work_records SET check_out = ?, hours_worked = ?
		WHERE id = ? AND check_out IS NULL`
	res, err := r.db.ExecContext(ctx, query, checkOut, hours, id)
	if err != nil {
		return storageErr("closing work record", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("closing work record", err)
	}
	if n == 0 {
		return fmt.Errorf("work record %d is missing or already closed: %w", id, domain.ErrInconsistentState)
	}
	return nil
}

func (r *SQLiteWorkRecordRepo) GetByID(ctx context.Context, id int64) (*domain.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE id = ?`
	rec, err := scanWorkRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("work record %d: %w", id, ErrNotFound)
		}
		return nil, storageErr("scanning work record", err)
	}
	return rec, nil
}

func (r *SQLiteWorkRecordRepo) ListByUser(ctx context.Context, userID int64, since string) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records WHERE user_id = ?`
	args := []any{userID}
	if since != "" {
		query += ` AND date >= ?`
		args = append(args, since)
	}
	query += ` ORDER BY date DESC, check_in DESC, id DESC`
	return r.list(ctx, "listing work records by user", query, args...)
}

func (r *SQLiteWorkRecordRepo) ListByUserOnDate(ctx context.Context, userID int64, date string) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records
		WHERE user_id = ? AND date = ? ORDER BY id`
	return r.list(ctx, "listing work records by date", query, userID, date)
}

func (r *SQLiteWorkRecordRepo) ListOpen(ctx context.Context) ([]*domain.WorkRecord, error) {
	query := `SELECT ` + workRecordColumns + ` FROM work_records
		WHERE check_out IS NULL ORDER BY id`
	return r.list(ctx, "listing open work records", query)
}

func (r *SQLiteWorkRecordRepo) AggregateAllUsers(ctx context.Context, since string) ([]domain.UserSummary, error) {
	query := `SELECT COALESCE(user_id, 0), COALESCE(user_name, ''),
			SUM(hours_worked) AS total_hours, COUNT(DISTINCT date)
		FROM work_records
		WHERE hours_worked IS NOT NULL`
	var args []any
	if since != "" {
		query += ` AND date >= ?`
		args = append(args, since)
	}
	query += ` GROUP BY user_id, user_name ORDER BY total_hours DESC, user_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("aggregating work records", err)
	}
	defer rows.Close()

	var out []domain.UserSummary
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.UserID, &s.UserName, &s.TotalHours, &s.DaysWorked); err != nil {
			return nil, storageErr("scanning user summary", err)
		}
		s.TotalHours = domain.RoundHours(s.TotalHours)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating user summaries", err)
	}
	return out, nil
}

func (r *SQLiteWorkRecordRepo) list(ctx context.Context, op, query string, args ...any) ([]*domain.WorkRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	var records []*domain.WorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, storageErr("scanning work record row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkRecord(row rowScanner) (*domain.WorkRecord, error) {
	var rec domain.WorkRecord
	var checkOut, checkedInAt sql.NullString
	var hours sql.NullFloat64

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.UserName, &rec.Date, &rec.CheckIn,
		&checkOut, &hours, &checkedInAt,
	)
	if err != nil {
		return nil, err
	}
	rec.CheckOut = nullStringPtr(checkOut)
	rec.HoursWorked = nullFloatPtr(hours)
	rec.CheckedInAt = parseNullableTime(checkedInAt)
	return &rec, nil
}
