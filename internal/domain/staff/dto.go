package staff

type StaffResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DepartmentID   string  `json:"department_id"`
	RoleID         string  `json:"role_id"`
	DepartmentName *string `json:"department_name,omitempty"`
	RoleName       *string `json:"role_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
