package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/staff"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

// GetByID implements staff.Repository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.id, s.name, s.department_id, s.role_id, s.created_at, s.updated_at,
			d.name AS department_name, r.name AS role_name
		FROM staff s
		LEFT JOIN departments d ON d.id = s.department_id
		LEFT JOIN roles r ON r.id = s.role_id
		WHERE s.id = $1
	`

	var st staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&st.ID,
		&st.Name,
		&st.DepartmentID,
		&st.RoleID,
		&st.CreatedAt,
		&st.UpdatedAt,
		&st.DepartmentName,
		&st.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return st, nil
}

// List implements staff.Repository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			s.id, s.name, s.department_id, s.role_id, s.created_at, s.updated_at,
			d.name AS department_name, r.name AS role_name
		FROM staff s
		LEFT JOIN departments d ON d.id = s.department_id
		LEFT JOIN roles r ON r.id = s.role_id
		ORDER BY s.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var st staff.Staff
		if err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.DepartmentID,
			&st.RoleID,
			&st.CreatedAt,
			&st.UpdatedAt,
			&st.DepartmentName,
			&st.RoleName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, st)
	}

	return result, rows.Err()
}

// ListDepartments implements staff.Repository.
func (r *staffRepositoryImpl) ListDepartments(ctx context.Context) ([]staff.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []staff.Department
	for rows.Next() {
		var d staff.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

// ListRoles implements staff.Repository.
func (r *staffRepositoryImpl) ListRoles(ctx context.Context) ([]staff.Role, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, created_at, updated_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []staff.Role
	for rows.Next() {
		var role staff.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}
