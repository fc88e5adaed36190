package calendar

import (
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

// ResolveDayStatus returns the single display status for one calendar date.
//
// The precedence is a strict waterfall, each check short-circuiting:
//
//  1. Holiday — compared at day granularity, masks everything.
//  2. Attendance record — masks leave even when both exist for the date,
//     since attendance reflects what actually happened.
//  3. Approved leave day selection.
//  4. NONE.
//
// Pure given its three index snapshots; a bad record can degrade one cell
// but never aborts the rest of the calendar.
func ResolveDayStatus(date time.Time, holidays HolidayIndex, records AttendanceIndex, leaves LeaveIndex) DayStatus {
	key := daterange.Format(daterange.Normalize(date))

	if h, ok := holidays[key]; ok {
		return DayStatus{Kind: StatusHoliday, Holiday: &h}
	}

	if rec, ok := records[key]; ok {
		return DayStatus{Kind: StatusAttendance, Attendance: &rec}
	}

	if l, ok := leaves[key]; ok {
		return DayStatus{Kind: StatusLeave, Leave: &l}
	}

	return DayStatus{Kind: StatusNone}
}
