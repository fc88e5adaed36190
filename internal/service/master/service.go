package master

import (
	"context"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/staff"
)

// The staff directory is read-mostly reference data owned by another system;
// this service only exposes lookups for the shift surfaces.
type staffServiceImpl struct {
	staffRepo staff.Repository
}

func NewStaffService(staffRepo staff.Repository) staff.Service {
	return &staffServiceImpl{staffRepo: staffRepo}
}

// GetStaff implements staff.Service.
func (s *staffServiceImpl) GetStaff(ctx context.Context, id string) (staff.StaffResponse, error) {
	st, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return toStaffResponse(st), nil
}

// ListStaff implements staff.Service.
func (s *staffServiceImpl) ListStaff(ctx context.Context) ([]staff.StaffResponse, error) {
	list, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.StaffResponse, 0, len(list))
	for _, st := range list {
		responses = append(responses, toStaffResponse(st))
	}
	return responses, nil
}

// ListDepartments implements staff.Service.
func (s *staffServiceImpl) ListDepartments(ctx context.Context) ([]staff.DepartmentResponse, error) {
	departments, err := s.staffRepo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, staff.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return responses, nil
}

// ListRoles implements staff.Service.
func (s *staffServiceImpl) ListRoles(ctx context.Context) ([]staff.RoleResponse, error) {
	roles, err := s.staffRepo.ListRoles(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]staff.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, staff.RoleResponse{ID: r.ID, Name: r.Name})
	}
	return responses, nil
}

func toStaffResponse(st staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:             st.ID,
		Name:           st.Name,
		DepartmentID:   st.DepartmentID,
		RoleID:         st.RoleID,
		DepartmentName: st.DepartmentName,
		RoleName:       st.RoleName,
		CreatedAt:      st.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      st.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
