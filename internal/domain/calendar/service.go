package calendar

import "context"

type Service interface {
	// GetStaffCalendar resolves every date in the requested window against
	// one consistent snapshot of assignments, attendance, approved leaves and
	// holidays.
	GetStaffCalendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)

	// ResolveShift resolves the applicable shift for a single date.
	ResolveShift(ctx context.Context, req ShiftResolutionRequest) (ShiftResolutionResponse, error)
}
