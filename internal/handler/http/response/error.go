package response

import (
	"errors"
	"net/http"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/shift"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/staff"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Date-range errors cover both inverted and over-long windows
	if daterange.IsRangeError(err) || errors.Is(err, daterange.ErrInvalidDate) {
		BadRequest(w, err.Error(), nil)
		return
	}

	switch {
	// Shift domain errors
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrAssignmentTypeExists):
		Conflict(w, "Staff member already has an assignment of this shift type")
	case errors.Is(err, shift.ErrCategoryNotFound):
		NotFound(w, "Shift category not found")
	case errors.Is(err, shift.ErrCategoryInUse):
		Conflict(w, "Shift category is referenced by existing assignments")
	case errors.Is(err, shift.ErrEditorSubmitted),
		errors.Is(err, shift.ErrEditorNotInMode),
		errors.Is(err, shift.ErrEditorNoPeriod):
		Conflict(w, err.Error())

	// Staff directory errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, staff.ErrRoleNotFound):
		NotFound(w, "Role not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Holiday errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
