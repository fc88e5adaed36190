package shift

import (
	"errors"
	"strings"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	StaffID            string            `json:"staff_id"`
	DepartmentID       string            `json:"department_id"`
	RoleID             string            `json:"role_id"`
	ShiftType          string            `json:"shift_type"`
	DefaultCategoryID  string            `json:"default_shift_category_id,omitempty"`
	WeekdayCategoryIDs map[string]string `json:"day_to_category_id,omitempty"`
	FromDate           string            `json:"from_date,omitempty"`
	ToDate             string            `json:"to_date,omitempty"`
	DateCategoryIDs    map[string]string `json:"date_to_category_id,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "role_id",
			Message: "role_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftType) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type is required",
		})
	} else if !validator.IsInSlice(r.ShiftType, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: " + strings.Join(TypeValues, ", "),
		})
	}

	for day := range r.WeekdayCategoryIDs {
		if !validator.IsInSlice(day, WeekdayValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "day_to_category_id",
				Message: "unknown weekday name: " + day,
			})
		}
	}

	if r.ShiftType == string(TypeSpecificPeriod) {
		if validator.IsEmpty(r.FromDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date is required for SPECIFIC_PERIOD assignments",
			})
		} else if _, ok := validator.IsValidDate(r.FromDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from_date",
				Message: "from_date must be a valid date in YYYY-MM-DD format",
			})
		}
		if validator.IsEmpty(r.ToDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date is required for SPECIFIC_PERIOD assignments",
			})
		} else if _, ok := validator.IsValidDate(r.ToDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to_date",
				Message: "to_date must be a valid date in YYYY-MM-DD format",
			})
		}
		for key := range r.DateCategoryIDs {
			if _, ok := validator.IsValidDate(key); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "date_to_category_id",
					Message: "map keys must be dates in YYYY-MM-DD format, got: " + key,
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssignmentRequest struct {
	ID string `json:"-"`
	CreateAssignmentRequest
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "assignment id is required",
		})
	}

	if err := r.CreateAssignmentRequest.Validate(); err != nil {
		var inner validator.ValidationErrors
		if errors.As(err, &inner) {
			errs = append(errs, inner...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID                 string            `json:"id"`
	StaffID            string            `json:"staff_id"`
	DepartmentID       string            `json:"department_id"`
	RoleID             string            `json:"role_id"`
	ShiftType          string            `json:"shift_type"`
	DefaultCategoryID  string            `json:"default_shift_category_id,omitempty"`
	WeekdayCategoryIDs map[string]string `json:"day_to_category_id,omitempty"`
	FromDate           string            `json:"from_date,omitempty"`
	ToDate             string            `json:"to_date,omitempty"`
	DateCategoryIDs    map[string]string `json:"date_to_category_id,omitempty"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

type CreateCategoryRequest struct {
	Name          string `json:"name"`
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`
}

func (r *CreateCategoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time is required",
		})
	} else if _, ok := validator.IsValidTime(r.WorkStartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be a valid time in HH:MM or HH:MM:SS format",
		})
	}
	if validator.IsEmpty(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time is required",
		})
	} else if _, ok := validator.IsValidTime(r.WorkEndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be a valid time in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CategoryResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}
