package calendar

import (
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/leave"
)

// StatusKind is the closed set of calendar-cell outcomes after the
// holiday/attendance/leave waterfall. NONE is a first-class value; rendering
// it as "NA" belongs to the caller.
type StatusKind string

const (
	StatusHoliday    StatusKind = "HOLIDAY"
	StatusAttendance StatusKind = "ATTENDANCE"
	StatusLeave      StatusKind = "LEAVE"
	StatusNone       StatusKind = "NONE"
)

// LeaveOverlay is the slice of an approved leave request shown on a single
// calendar date.
type LeaveOverlay struct {
	Portion       leave.Portion
	Subject       string
	RelatedReason string
	ApproverName  string
}

// DayStatus is the single display status for one calendar date. Exactly the
// field matching Kind is set.
type DayStatus struct {
	Kind       StatusKind
	Holiday    *holiday.Holiday
	Attendance *attendance.Record
	Leave      *LeaveOverlay
}
