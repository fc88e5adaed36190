package shift

import (
	"context"
	"fmt"
	"sort"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/shift"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/staff"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

type shiftServiceImpl struct {
	assignmentRepo shift.AssignmentRepository
	categoryRepo   shift.CategoryRepository
	staffRepo      staff.Repository
}

func NewShiftService(
	assignmentRepo shift.AssignmentRepository,
	categoryRepo shift.CategoryRepository,
	staffRepo staff.Repository,
) shift.Service {
	return &shiftServiceImpl{
		assignmentRepo: assignmentRepo,
		categoryRepo:   categoryRepo,
		staffRepo:      staffRepo,
	}
}

// CreateAssignment implements shift.Service.
//
// The request is replayed through an editor session so the API path enforces
// the same rules as the interactive workflow: mode-scoped input, the period
// span cap, and submit-time filtering of stale or empty per-date entries.
func (s *shiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	payload, err := buildPayload(req)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	if err := s.checkCategories(ctx, payload); err != nil {
		return shift.AssignmentResponse{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, payload)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	return toAssignmentResponse(created), nil
}

// UpdateAssignment implements shift.Service.
func (s *shiftServiceImpl) UpdateAssignment(ctx context.Context, req shift.UpdateAssignmentRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	if _, err := s.assignmentRepo.GetByID(ctx, req.ID); err != nil {
		return shift.AssignmentResponse{}, err
	}

	payload, err := buildPayload(req.CreateAssignmentRequest)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	if err := s.checkCategories(ctx, payload); err != nil {
		return shift.AssignmentResponse{}, err
	}

	updated, err := s.assignmentRepo.Update(ctx, req.ID, payload)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	return toAssignmentResponse(updated), nil
}

// GetAssignment implements shift.Service.
func (s *shiftServiceImpl) GetAssignment(ctx context.Context, id string) (shift.AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		return shift.AssignmentResponse{}, err
	}
	return toAssignmentResponse(assignment), nil
}

// ListStaffAssignments implements shift.Service.
func (s *shiftServiceImpl) ListStaffAssignments(ctx context.Context, staffID string) ([]shift.AssignmentResponse, error) {
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	return responses, nil
}

// DeleteAssignment implements shift.Service.
func (s *shiftServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	return s.assignmentRepo.Delete(ctx, id)
}

// CreateCategory implements shift.Service.
func (s *shiftServiceImpl) CreateCategory(ctx context.Context, req shift.CreateCategoryRequest) (shift.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.CategoryResponse{}, err
	}

	created, err := s.categoryRepo.Create(ctx, shift.Category{
		Name:          req.Name,
		WorkStartTime: req.WorkStartTime,
		WorkEndTime:   req.WorkEndTime,
	})
	if err != nil {
		return shift.CategoryResponse{}, err
	}

	return toCategoryResponse(created), nil
}

// ListCategories implements shift.Service.
func (s *shiftServiceImpl) ListCategories(ctx context.Context) ([]shift.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, toCategoryResponse(cat))
	}
	return responses, nil
}

// DeleteCategory implements shift.Service.
func (s *shiftServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.Delete(ctx, id)
}

// buildPayload replays the request through the editor state machine.
func buildPayload(req shift.CreateAssignmentRequest) (shift.AssignmentPayload, error) {
	session := shift.NewEditorSession(req.StaffID, req.DepartmentID, req.RoleID)

	if err := session.SelectType(shift.Type(req.ShiftType)); err != nil {
		return shift.AssignmentPayload{}, err
	}

	switch shift.Type(req.ShiftType) {
	case shift.TypeDefault:
		if err := session.SetDefaultCategory(req.DefaultCategoryID); err != nil {
			return shift.AssignmentPayload{}, err
		}

	case shift.TypeWeekly:
		// Deterministic apply order; map iteration order is random.
		days := make([]string, 0, len(req.WeekdayCategoryIDs))
		for day := range req.WeekdayCategoryIDs {
			days = append(days, day)
		}
		sort.Strings(days)
		for _, day := range days {
			if err := session.SetWeekdayCategory(shift.Weekday(day), req.WeekdayCategoryIDs[day]); err != nil {
				return shift.AssignmentPayload{}, err
			}
		}

	case shift.TypeSpecificPeriod:
		from, err := daterange.Parse(req.FromDate)
		if err != nil {
			return shift.AssignmentPayload{}, err
		}
		to, err := daterange.Parse(req.ToDate)
		if err != nil {
			return shift.AssignmentPayload{}, err
		}
		if err := session.SetPeriod(from, to); err != nil {
			return shift.AssignmentPayload{}, err
		}
		keys := make([]string, 0, len(req.DateCategoryIDs))
		for key := range req.DateCategoryIDs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := session.SetDateCategory(key, req.DateCategoryIDs[key]); err != nil {
				return shift.AssignmentPayload{}, err
			}
		}
	}

	payload, err := session.BuildPayload()
	if err != nil {
		return shift.AssignmentPayload{}, err
	}
	if err := session.MarkSubmitted(); err != nil {
		return shift.AssignmentPayload{}, fmt.Errorf("failed to finalize editor session: %w", err)
	}

	return payload, nil
}

// checkCategories verifies every referenced category id exists before the
// payload is persisted.
func (s *shiftServiceImpl) checkCategories(ctx context.Context, payload shift.AssignmentPayload) error {
	seen := make(map[string]bool)
	check := func(id string) error {
		if id == "" || seen[id] {
			return nil
		}
		seen[id] = true
		if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
			return err
		}
		return nil
	}

	if err := check(payload.DefaultCategoryID); err != nil {
		return err
	}
	for _, id := range payload.WeekdayCategoryIDs {
		if err := check(id); err != nil {
			return err
		}
	}
	for _, id := range payload.DateCategoryIDs {
		if err := check(id); err != nil {
			return err
		}
	}
	return nil
}

func toAssignmentResponse(a shift.Assignment) shift.AssignmentResponse {
	resp := shift.AssignmentResponse{
		ID:                a.ID,
		StaffID:           a.StaffID,
		DepartmentID:      a.DepartmentID,
		RoleID:            a.RoleID,
		ShiftType:         string(a.Type),
		DefaultCategoryID: a.DefaultCategoryID,
		DateCategoryIDs:   a.DateCategoryIDs,
		CreatedAt:         a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:         a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}

	if len(a.WeekdayCategoryIDs) > 0 {
		resp.WeekdayCategoryIDs = make(map[string]string, len(a.WeekdayCategoryIDs))
		for day, id := range a.WeekdayCategoryIDs {
			resp.WeekdayCategoryIDs[string(day)] = id
		}
	}
	if a.Type == shift.TypeSpecificPeriod {
		resp.FromDate = daterange.Format(a.FromDate)
		resp.ToDate = daterange.Format(a.ToDate)
	}

	return resp
}

func toCategoryResponse(c shift.Category) shift.CategoryResponse {
	return shift.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		WorkStartTime: c.WorkStartTime,
		WorkEndTime:   c.WorkEndTime,
		CreatedAt:     c.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     c.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
