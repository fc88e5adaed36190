package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/shift"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

const assignmentColumns = `
	id, staff_id, department_id, role_id, shift_type,
	default_category_id, weekday_category_ids,
	from_date, to_date, date_category_ids,
	created_at, updated_at
`

// Create implements shift.AssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, payload shift.AssignmentPayload) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	weekdayJSON, dateJSON, fromDate, toDate, err := encodePayload(payload)
	if err != nil {
		return shift.Assignment{}, err
	}

	query := `
		INSERT INTO shift_assignments (` + assignmentColumns + `
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING ` + assignmentColumns

	row := q.QueryRow(ctx, query,
		uuid.NewString(),
		payload.StaffID,
		payload.DepartmentID,
		payload.RoleID,
		string(payload.ShiftType),
		nullIfEmpty(payload.DefaultCategoryID),
		weekdayJSON,
		fromDate,
		toDate,
		dateJSON,
	)

	created, err := scanAssignment(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on (staff_id, shift_type)
			return shift.Assignment{}, shift.ErrAssignmentTypeExists
		}
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return created, nil
}

// Update implements shift.AssignmentRepository.
//
// The row is locked before the rewrite so a concurrent type change cannot
// slip between the existence check and the update.
func (r *shiftAssignmentRepositoryImpl) Update(ctx context.Context, id string, payload shift.AssignmentPayload) (shift.Assignment, error) {
	weekdayJSON, dateJSON, fromDate, toDate, err := encodePayload(payload)
	if err != nil {
		return shift.Assignment{}, err
	}

	var updated shift.Assignment
	err = WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		var one int
		if err := q.QueryRow(txCtx, `SELECT 1 FROM shift_assignments WHERE id = $1 FOR UPDATE`, id).Scan(&one); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return shift.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to lock shift assignment: %w", err)
		}

		query := `
			UPDATE shift_assignments SET
				shift_type = $2,
				default_category_id = $3,
				weekday_category_ids = $4,
				from_date = $5,
				to_date = $6,
				date_category_ids = $7,
				updated_at = NOW()
			WHERE id = $1
			RETURNING ` + assignmentColumns

		row := q.QueryRow(txCtx, query,
			id,
			string(payload.ShiftType),
			nullIfEmpty(payload.DefaultCategoryID),
			weekdayJSON,
			fromDate,
			toDate,
			dateJSON,
		)

		updated, err = scanAssignment(row)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return shift.ErrAssignmentTypeExists
			}
			return fmt.Errorf("failed to update shift assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.Assignment{}, err
	}

	return updated, nil
}

// GetByID implements shift.AssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM shift_assignments WHERE id = $1`

	assignment, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return assignment, nil
}

// GetByStaffID implements shift.AssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetByStaffID(ctx context.Context, staffID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE staff_id = $1
		ORDER BY shift_type
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

// Delete implements shift.AssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// encodePayload converts the kind-specific payload fields into their column
// representations. Maps for the inactive kinds are stored as NULL, not {}.
func encodePayload(payload shift.AssignmentPayload) (weekdayJSON, dateJSON []byte, fromDate, toDate *time.Time, err error) {
	if len(payload.WeekdayCategoryIDs) > 0 {
		weekdayJSON, err = json.Marshal(payload.WeekdayCategoryIDs)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("failed to encode weekday categories: %w", err)
		}
	}
	if len(payload.DateCategoryIDs) > 0 {
		dateJSON, err = json.Marshal(payload.DateCategoryIDs)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("failed to encode date categories: %w", err)
		}
	}
	if payload.FromDate != "" {
		d, parseErr := daterange.Parse(payload.FromDate)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		fromDate = &d
	}
	if payload.ToDate != "" {
		d, parseErr := daterange.Parse(payload.ToDate)
		if parseErr != nil {
			return nil, nil, nil, nil, parseErr
		}
		toDate = &d
	}
	return weekdayJSON, dateJSON, fromDate, toDate, nil
}

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var (
		a                 shift.Assignment
		shiftType         string
		defaultCategoryID *string
		weekdayJSON       []byte
		dateJSON          []byte
		fromDate          *time.Time
		toDate            *time.Time
	)

	err := row.Scan(
		&a.ID,
		&a.StaffID,
		&a.DepartmentID,
		&a.RoleID,
		&shiftType,
		&defaultCategoryID,
		&weekdayJSON,
		&fromDate,
		&toDate,
		&dateJSON,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return shift.Assignment{}, err
	}

	a.Type = shift.Type(shiftType)
	if defaultCategoryID != nil {
		a.DefaultCategoryID = *defaultCategoryID
	}
	if len(weekdayJSON) > 0 {
		if err := json.Unmarshal(weekdayJSON, &a.WeekdayCategoryIDs); err != nil {
			return shift.Assignment{}, fmt.Errorf("failed to decode weekday categories: %w", err)
		}
	}
	if len(dateJSON) > 0 {
		if err := json.Unmarshal(dateJSON, &a.DateCategoryIDs); err != nil {
			return shift.Assignment{}, fmt.Errorf("failed to decode date categories: %w", err)
		}
	}
	if fromDate != nil {
		a.FromDate = *fromDate
	}
	if toDate != nil {
		a.ToDate = *toDate
	}

	return a, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
