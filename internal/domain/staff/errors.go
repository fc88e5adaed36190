package staff

import "errors"

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrRoleNotFound       = errors.New("role not found")
)
