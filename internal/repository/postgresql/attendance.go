package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, staff_id, date, status, login_time, logout_time,
	total_worked_minutes, is_early_login, is_late_login,
	is_early_logout, is_late_logout, created_at, updated_at
`

// GetByStaffAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1 AND date = $2
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if !record.Status.Known() {
		return attendance.Record{}, fmt.Errorf("%w: %q", attendance.ErrUnknownStatus, record.Status)
	}

	return record, nil
}

// GetByStaffAndRange implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var (
		rec    attendance.Record
		status string
	)

	err := row.Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.Date,
		&status,
		&rec.LoginTime,
		&rec.LogoutTime,
		&rec.TotalWorkedMinutes,
		&rec.IsEarlyLogin,
		&rec.IsLateLogin,
		&rec.IsEarlyLogout,
		&rec.IsLateLogout,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	// Unknown status codes are passed through; range consumers degrade the
	// affected row rather than failing the whole fetch.
	rec.Status = attendance.Status(status)

	return rec, nil
}
