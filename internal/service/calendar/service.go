package calendar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/calendar"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/leave"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/shift"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/staff"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

type calendarServiceImpl struct {
	staffRepo      staff.Repository
	assignmentRepo shift.AssignmentRepository
	categoryRepo   shift.CategoryRepository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	holidayRepo    holiday.Repository
	logger         *slog.Logger
}

func NewCalendarService(
	staffRepo staff.Repository,
	assignmentRepo shift.AssignmentRepository,
	categoryRepo shift.CategoryRepository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	holidayRepo holiday.Repository,
	logger *slog.Logger,
) calendar.Service {
	return &calendarServiceImpl{
		staffRepo:      staffRepo,
		assignmentRepo: assignmentRepo,
		categoryRepo:   categoryRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		logger:         logger,
	}
}

// GetStaffCalendar implements calendar.Service.
//
// All collaborator data is fetched once for the window, then every date is
// resolved against that snapshot. A dangling category reference degrades the
// affected cells to "no shift" and is reported as a warning, never an error.
func (s *calendarServiceImpl) GetStaffCalendar(ctx context.Context, req calendar.CalendarRequest) (calendar.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarResponse{}, err
	}

	from, _ := daterange.Parse(req.FromDate)
	to, _ := daterange.Parse(req.ToDate)

	dates, err := daterange.EnumerateBounded(from, to, calendar.MaxWindowDays)
	if err != nil {
		return calendar.CalendarResponse{}, err
	}

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return calendar.CalendarResponse{}, err
	}

	set, catalog, err := s.loadAssignments(ctx, req.StaffID)
	if err != nil {
		return calendar.CalendarResponse{}, err
	}

	records, err := s.attendanceRepo.GetByStaffAndRange(ctx, req.StaffID, from, to)
	if err != nil {
		return calendar.CalendarResponse{}, fmt.Errorf("failed to fetch attendance records: %w", err)
	}
	leaves, err := s.leaveRepo.GetByStaffAndRange(ctx, req.StaffID, from, to)
	if err != nil {
		return calendar.CalendarResponse{}, fmt.Errorf("failed to fetch leave requests: %w", err)
	}
	holidays, err := s.holidayRepo.GetByRange(ctx, from, to)
	if err != nil {
		return calendar.CalendarResponse{}, fmt.Errorf("failed to fetch holidays: %w", err)
	}

	resp := calendar.CalendarResponse{
		StaffID:  req.StaffID,
		FromDate: daterange.Format(from),
		ToDate:   daterange.Format(to),
		Days:     make([]calendar.DayCell, 0, len(dates)),
	}

	// A record with an unknown status code degrades to a blank cell and a
	// warning; it must never take the rest of the window down with it.
	known := make([]attendance.Record, 0, len(records))
	for _, rec := range records {
		if !rec.Status.Known() {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("attendance record on %s has unknown status %q", daterange.Format(rec.Date), rec.Status))
			s.logger.WarnContext(ctx, "attendance record has unknown status",
				slog.String("staff_id", req.StaffID),
				slog.String("date", daterange.Format(rec.Date)),
				slog.String("status", string(rec.Status)),
			)
			continue
		}
		known = append(known, rec)
	}

	holidayIdx := calendar.BuildHolidayIndex(holidays)
	attendanceIdx := calendar.BuildAttendanceIndex(known)
	leaveIdx := calendar.BuildLeaveIndex(leaves)

	warned := make(map[string]bool)
	for _, date := range dates {
		cell := calendar.DayCell{
			Date:    daterange.Format(date),
			Weekday: string(shift.WeekdayOf(date)),
		}

		cat, ok, dangling := set.ResolveCategory(date, catalog)
		if ok {
			cell.Shift = toShiftCell(cat)
		} else if dangling != "" && !warned[dangling] {
			warned[dangling] = true
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("assignment references unknown shift category %q", dangling))
			s.logger.WarnContext(ctx, "shift assignment references unknown category",
				slog.String("staff_id", req.StaffID),
				slog.String("category_id", dangling),
			)
		}

		status := calendar.ResolveDayStatus(date, holidayIdx, attendanceIdx, leaveIdx)
		cell.Status = string(status.Kind)
		switch status.Kind {
		case calendar.StatusHoliday:
			cell.Holiday = &calendar.HolidayCell{Name: status.Holiday.Name}
		case calendar.StatusAttendance:
			cell.Attendance = toAttendanceCell(*status.Attendance)
		case calendar.StatusLeave:
			cell.Leave = &calendar.LeaveCell{
				DayType:       string(status.Leave.Portion),
				Subject:       status.Leave.Subject,
				RelatedReason: status.Leave.RelatedReason,
				ApproverName:  status.Leave.ApproverName,
			}
		}

		resp.Days = append(resp.Days, cell)
	}

	return resp, nil
}

// ResolveShift implements calendar.Service.
func (s *calendarServiceImpl) ResolveShift(ctx context.Context, req calendar.ShiftResolutionRequest) (calendar.ShiftResolutionResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.ShiftResolutionResponse{}, err
	}

	date, _ := daterange.Parse(req.Date)

	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return calendar.ShiftResolutionResponse{}, err
	}

	set, catalog, err := s.loadAssignments(ctx, req.StaffID)
	if err != nil {
		return calendar.ShiftResolutionResponse{}, err
	}

	resp := calendar.ShiftResolutionResponse{
		StaffID: req.StaffID,
		Date:    daterange.Format(date),
	}

	cat, ok, dangling := set.ResolveCategory(date, catalog)
	if ok {
		resp.Shift = toShiftCell(cat)
	} else if dangling != "" {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("assignment references unknown shift category %q", dangling))
		s.logger.WarnContext(ctx, "shift assignment references unknown category",
			slog.String("staff_id", req.StaffID),
			slog.String("category_id", dangling),
		)
	}

	return resp, nil
}

func (s *calendarServiceImpl) loadAssignments(ctx context.Context, staffID string) (shift.AssignmentSet, shift.Catalog, error) {
	assignments, err := s.assignmentRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		return shift.AssignmentSet{}, nil, fmt.Errorf("failed to fetch shift assignments: %w", err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return shift.AssignmentSet{}, nil, fmt.Errorf("failed to fetch shift categories: %w", err)
	}
	return shift.NewAssignmentSet(assignments), shift.NewCatalog(categories), nil
}

func toShiftCell(cat shift.Category) *calendar.ShiftCell {
	return &calendar.ShiftCell{
		CategoryID:    cat.ID,
		Name:          cat.Name,
		WorkStartTime: cat.WorkStartTime,
		WorkEndTime:   cat.WorkEndTime,
	}
}

func toAttendanceCell(rec attendance.Record) *calendar.AttendanceCell {
	cell := &calendar.AttendanceCell{
		Status:             string(rec.Status),
		TotalWorkedMinutes: rec.TotalWorkedMinutes,
		IsEarlyLogin:       rec.IsEarlyLogin,
		IsLateLogin:        rec.IsLateLogin,
		IsEarlyLogout:      rec.IsEarlyLogout,
		IsLateLogout:       rec.IsLateLogout,
	}
	if rec.LoginTime != nil {
		t := rec.LoginTime.Format("15:04:05")
		cell.LoginTime = &t
	}
	if rec.LogoutTime != nil {
		t := rec.LogoutTime.Format("15:04:05")
		cell.LogoutTime = &t
	}
	return cell
}
