package staff

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	ListRoles(ctx context.Context) ([]Role, error)
}
