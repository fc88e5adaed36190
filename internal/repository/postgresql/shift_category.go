package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/shift"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type shiftCategoryRepositoryImpl struct {
	db *database.DB
}

func NewShiftCategoryRepository(db *database.DB) shift.CategoryRepository {
	return &shiftCategoryRepositoryImpl{db: db}
}

// Create implements shift.CategoryRepository.
func (r *shiftCategoryRepositoryImpl) Create(ctx context.Context, category shift.Category) (shift.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_categories (
			id, name, work_start_time, work_end_time, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	created := category
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		category.Name,
		category.WorkStartTime,
		category.WorkEndTime,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return shift.Category{}, fmt.Errorf("failed to create shift category: %w", err)
	}

	return created, nil
}

// GetByID implements shift.CategoryRepository.
func (r *shiftCategoryRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_start_time, work_end_time, created_at, updated_at
		FROM shift_categories
		WHERE id = $1
	`

	var cat shift.Category
	err := q.QueryRow(ctx, query, id).Scan(
		&cat.ID,
		&cat.Name,
		&cat.WorkStartTime,
		&cat.WorkEndTime,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Category{}, shift.ErrCategoryNotFound
		}
		return shift.Category{}, fmt.Errorf("failed to get shift category: %w", err)
	}

	return cat, nil
}

// List implements shift.CategoryRepository.
func (r *shiftCategoryRepositoryImpl) List(ctx context.Context) ([]shift.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, work_start_time, work_end_time, created_at, updated_at
		FROM shift_categories
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift categories: %w", err)
	}
	defer rows.Close()

	var categories []shift.Category
	for rows.Next() {
		var cat shift.Category
		if err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.WorkStartTime,
			&cat.WorkEndTime,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift category: %w", err)
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

// Delete implements shift.CategoryRepository.
func (r *shiftCategoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_categories WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return shift.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete shift category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrCategoryNotFound
	}

	return nil
}
