package shift

import (
	"context"
)

type Service interface {
	// Assignments
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, id string) (AssignmentResponse, error)
	ListStaffAssignments(ctx context.Context, staffID string) ([]AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error

	// Categories
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}
