package calendar

import (
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/validator"
)

// MaxWindowDays bounds one calendar fetch; callers page by month or quarter,
// never the whole employment history.
const MaxWindowDays = 92

type CalendarRequest struct {
	StaffID  string `json:"staff_id"`
	FromDate string `json:"from_date"` // YYYY-MM-DD
	ToDate   string `json:"to_date"`   // YYYY-MM-DD
}

func (r *CalendarRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
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
			Message: "to_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.ToDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftCell struct {
	CategoryID    string `json:"category_id"`
	Name          string `json:"name"`
	WorkStartTime string `json:"work_start_time"`
	WorkEndTime   string `json:"work_end_time"`
}

type HolidayCell struct {
	Name string `json:"name"`
}

type AttendanceCell struct {
	Status             string  `json:"status"`
	LoginTime          *string `json:"login_time,omitempty"`
	LogoutTime         *string `json:"logout_time,omitempty"`
	TotalWorkedMinutes int     `json:"total_worked_duration_minutes"`
	IsEarlyLogin       bool    `json:"is_early_login"`
	IsLateLogin        bool    `json:"is_late_login"`
	IsEarlyLogout      bool    `json:"is_early_logout"`
	IsLateLogout       bool    `json:"is_late_logout"`
}

type LeaveCell struct {
	DayType       string `json:"day_type"`
	Subject       string `json:"subject"`
	RelatedReason string `json:"related_reason"`
	ApproverName  string `json:"approver_name"`
}

// DayCell is one resolved calendar cell: the applicable shift (if any) plus
// the display status after the holiday/attendance/leave waterfall.
type DayCell struct {
	Date       string          `json:"date"`
	Weekday    string          `json:"weekday"`
	Shift      *ShiftCell      `json:"shift,omitempty"`
	Status     string          `json:"status"`
	Holiday    *HolidayCell    `json:"holiday,omitempty"`
	Attendance *AttendanceCell `json:"attendance,omitempty"`
	Leave      *LeaveCell      `json:"leave,omitempty"`
}

type CalendarResponse struct {
	StaffID  string    `json:"staff_id"`
	FromDate string    `json:"from_date"`
	ToDate   string    `json:"to_date"`
	Days     []DayCell `json:"days"`

	// Data-integrity warnings (e.g. an assignment referencing a category id
	// missing from the catalog). Never fatal.
	Warnings []string `json:"warnings,omitempty"`
}

type ShiftResolutionRequest struct {
	StaffID string `json:"staff_id"`
	Date    string `json:"date"` // YYYY-MM-DD
}

func (r *ShiftResolutionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResolutionResponse struct {
	StaffID  string     `json:"staff_id"`
	Date     string     `json:"date"`
	Shift    *ShiftCell `json:"shift,omitempty"`
	Warnings []string   `json:"warnings,omitempty"`
}
