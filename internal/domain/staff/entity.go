package staff

import "time"

// Staff is a read-mostly directory row owned by the staff collaborator.
// Every shift assignment belongs to exactly one (staff, department, role)
// triple.
type Staff struct {
	ID           string
	Name         string
	DepartmentID string
	RoleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined directory names
	DepartmentName *string
	RoleName       *string
}

type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
