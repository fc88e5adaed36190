package shift

import (
	"context"
)

type AssignmentRepository interface {
	Create(ctx context.Context, payload AssignmentPayload) (Assignment, error)
	Update(ctx context.Context, id string, payload AssignmentPayload) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	GetByStaffID(ctx context.Context, staffID string) ([]Assignment, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Delete(ctx context.Context, id string) error
}
