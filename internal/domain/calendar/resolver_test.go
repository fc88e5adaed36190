package calendar

import (
	"testing"
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func july4() time.Time { return date(2024, 7, 4) }

func holidayIdx() HolidayIndex {
	return BuildHolidayIndex([]holiday.Holiday{
		{ID: "h1", Date: july4(), Name: "Independence Day"},
	})
}

func attendanceIdx(status attendance.Status) AttendanceIndex {
	return BuildAttendanceIndex([]attendance.Record{
		{ID: "att1", StaffID: "staff-1", Date: july4(), Status: status, TotalWorkedMinutes: 240},
	})
}

func leaveIdx(status leave.RequestStatus) LeaveIndex {
	return BuildLeaveIndex([]leave.Request{
		{
			ID:            "lv1",
			StaffID:       "staff-1",
			Status:        status,
			Subject:       "Family function",
			RelatedReason: "Personal",
			ApproverName:  "Priya N",
			Days: []leave.DaySelection{
				{Date: july4(), Portion: leave.PortionHalf},
			},
		},
	})
}

func TestResolveDayStatus_Waterfall(t *testing.T) {
	holidays := holidayIdx()
	records := attendanceIdx(attendance.StatusAbsent)
	leaves := leaveIdx(leave.StatusApproved)

	// All three present: holiday masks everything, even an AB record.
	got := ResolveDayStatus(july4(), holidays, records, leaves)
	require.Equal(t, StatusHoliday, got.Kind)
	assert.Equal(t, "Independence Day", got.Holiday.Name)

	// Remove the holiday: attendance wins over the approved leave.
	got = ResolveDayStatus(july4(), HolidayIndex{}, records, leaves)
	require.Equal(t, StatusAttendance, got.Kind)
	assert.Equal(t, attendance.StatusAbsent, got.Attendance.Status)

	// Remove the attendance record: the approved leave surfaces.
	got = ResolveDayStatus(july4(), HolidayIndex{}, AttendanceIndex{}, leaves)
	require.Equal(t, StatusLeave, got.Kind)
	assert.Equal(t, leave.PortionHalf, got.Leave.Portion)
	assert.Equal(t, "Family function", got.Leave.Subject)
	assert.Equal(t, "Priya N", got.Leave.ApproverName)

	// Nothing at all.
	got = ResolveDayStatus(july4(), HolidayIndex{}, AttendanceIndex{}, LeaveIndex{})
	assert.Equal(t, StatusNone, got.Kind)
	assert.Nil(t, got.Holiday)
	assert.Nil(t, got.Attendance)
	assert.Nil(t, got.Leave)
}

func TestResolveDayStatus_AttendanceMasksHalfDayLeave(t *testing.T) {
	// A half-day attendance entry on a day that also has an approved
	// half-day leave selection: attendance wins, since it reflects what
	// actually happened.
	got := ResolveDayStatus(july4(), HolidayIndex{}, attendanceIdx(attendance.StatusHalfDay), leaveIdx(leave.StatusApproved))
	require.Equal(t, StatusAttendance, got.Kind)
	assert.Equal(t, attendance.StatusHalfDay, got.Attendance.Status)
}

func TestResolveDayStatus_DayGranularity(t *testing.T) {
	// Holiday stored at midnight, query carries a time-of-day: still matches.
	afternoon := time.Date(2024, 7, 4, 15, 45, 0, 0, time.UTC)
	got := ResolveDayStatus(afternoon, holidayIdx(), AttendanceIndex{}, LeaveIndex{})
	assert.Equal(t, StatusHoliday, got.Kind)
}

func TestBuildLeaveIndex_ApprovedOnly(t *testing.T) {
	for _, status := range []leave.RequestStatus{leave.StatusPending, leave.StatusRejected, leave.StatusCancelled} {
		idx := leaveIdx(status)
		assert.Empty(t, idx, "requests with status %s must not contribute", status)
	}

	idx := leaveIdx(leave.StatusApproved)
	require.Len(t, idx, 1)
	overlay, ok := idx["2024-07-04"]
	require.True(t, ok)
	assert.Equal(t, leave.PortionHalf, overlay.Portion)
}

func TestBuildIndexes_KeyedByISODate(t *testing.T) {
	hIdx := holidayIdx()
	_, ok := hIdx["2024-07-04"]
	assert.True(t, ok)

	aIdx := attendanceIdx(attendance.StatusPresent)
	_, ok = aIdx["2024-07-04"]
	assert.True(t, ok)
}
