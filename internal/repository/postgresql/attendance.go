package postgresql

import (
	"context"
	"fmt"

	"github.com/attendit/attendit-backend-go/internal/domain/attendance"
	"github.com/attendit/attendit-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// attendanceRecordStore persists one row per (date, employee) pair. A whole
// day's record is the set of rows sharing a date; dates never saved simply
// have no rows.
type attendanceRecordStore struct {
	db *database.DB
}

func NewAttendanceRecordStore(db *database.DB) attendance.RecordStore {
	return &attendanceRecordStore{db: db}
}

// GetByDate implements attendance.RecordStore.
func (a *attendanceRecordStore) GetByDate(ctx context.Context, date string) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id, status
		FROM attendance_records
		WHERE date = $1::date
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance for %s: %w", date, err)
	}
	defer rows.Close()

	record := make(attendance.DayRecord)
	for rows.Next() {
		var employeeID string
		var status attendance.Status
		if err := rows.Scan(&employeeID, &status); err != nil {
			return nil, err
		}
		record[employeeID] = status
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return record, nil
}

// SetByDate implements attendance.RecordStore. The upsert per entry gives the
// merge semantics: rows for the date that are not in record stay untouched.
func (a *attendanceRecordStore) SetByDate(ctx context.Context, date string, record attendance.DayRecord) error {
	if len(record) == 0 {
		return nil
	}

	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO attendance_records (date, employee_id, status, created_at, updated_at)
			VALUES ($1::date, $2, $3, NOW(), NOW())
			ON CONFLICT (date, employee_id)
			DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
		`

		for employeeID, status := range record {
			if _, err := tx.Exec(ctx, query, date, employeeID, status); err != nil {
				return fmt.Errorf("failed to save attendance for %s: %w", date, err)
			}
		}
		return nil
	})
}

// GetByDateRange implements attendance.RecordStore.
func (a *attendanceRecordStore) GetByDateRange(ctx context.Context, start, end string) (map[string]attendance.DayRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), employee_id, status
		FROM attendance_records
		WHERE date >= $1::date AND date <= $2::date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance range %s..%s: %w", start, end, err)
	}
	defer rows.Close()

	records := make(map[string]attendance.DayRecord)
	for rows.Next() {
		var date, employeeID string
		var status attendance.Status
		if err := rows.Scan(&date, &employeeID, &status); err != nil {
			return nil, err
		}
		if records[date] == nil {
			records[date] = make(attendance.DayRecord)
		}
		records[date][employeeID] = status
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
