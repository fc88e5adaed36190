package calendar

import (
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/attendance"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/holiday"
	"github.com/dharunlider/erp-shift-backend-go/internal/domain/leave"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

// Snapshot indices keyed by canonical ISO date, giving the resolver O(1)
// lookup per calendar cell. Building them from the raw fetched lists is the
// caller's responsibility; resolution itself stays pure.

type HolidayIndex map[string]holiday.Holiday

type AttendanceIndex map[string]attendance.Record

type LeaveIndex map[string]LeaveOverlay

func BuildHolidayIndex(holidays []holiday.Holiday) HolidayIndex {
	idx := make(HolidayIndex, len(holidays))
	for _, h := range holidays {
		idx[daterange.Format(daterange.Normalize(h.Date))] = h
	}
	return idx
}

func BuildAttendanceIndex(records []attendance.Record) AttendanceIndex {
	idx := make(AttendanceIndex, len(records))
	for _, rec := range records {
		idx[daterange.Format(daterange.Normalize(rec.Date))] = rec
	}
	return idx
}

// BuildLeaveIndex folds day selections of APPROVED requests into a per-date
// overlay. Requests in any other status contribute nothing.
func BuildLeaveIndex(requests []leave.Request) LeaveIndex {
	idx := make(LeaveIndex)
	for _, req := range requests {
		if req.Status != leave.StatusApproved {
			continue
		}
		for _, day := range req.Days {
			idx[daterange.Format(daterange.Normalize(day.Date))] = LeaveOverlay{
				Portion:       day.Portion,
				Subject:       req.Subject,
				RelatedReason: req.RelatedReason,
				ApproverName:  req.ApproverName,
			}
		}
	}
	return idx
}
