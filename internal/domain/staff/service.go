package staff

import "context"

type Service interface {
	GetStaff(ctx context.Context, id string) (StaffResponse, error)
	ListStaff(ctx context.Context) ([]StaffResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
}
