package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dharunlider/erp-shift-backend-go/internal/domain/leave"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/database"
	"github.com/dharunlider/erp-shift-backend-go/internal/pkg/daterange"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

// GetByStaffAndRange implements leave.Repository.
//
// Day selections are aggregated per request so one query returns complete
// aggregates. A request matches when any of its selections falls in range,
// and it comes back with all its selections, including out-of-range ones.
func (r *leaveRequestRepositoryImpl) GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			lr.id, lr.staff_id, lr.status, lr.subject, lr.related_reason,
			lr.approver_name, lr.created_at, lr.updated_at,
			COALESCE(
				json_agg(
					json_build_object(
						'date', to_char(ld.date, 'YYYY-MM-DD'),
						'portion', ld.portion
					) ORDER BY ld.date
				) FILTER (WHERE ld.id IS NOT NULL),
				'[]'
			) AS days
		FROM leave_requests lr
		LEFT JOIN leave_day_selections ld ON ld.leave_request_id = lr.id
		WHERE lr.staff_id = $1
		  AND EXISTS (
			SELECT 1 FROM leave_day_selections x
			WHERE x.leave_request_id = lr.id AND x.date BETWEEN $2 AND $3
		  )
		GROUP BY lr.id
		ORDER BY lr.created_at
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var (
			req      leave.Request
			status   string
			daysJSON []byte
		)
		if err := rows.Scan(
			&req.ID,
			&req.StaffID,
			&status,
			&req.Subject,
			&req.RelatedReason,
			&req.ApproverName,
			&req.CreatedAt,
			&req.UpdatedAt,
			&daysJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.Status = leave.RequestStatus(status)

		days, err := decodeDaySelections(daysJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode leave day selections: %w", err)
		}
		req.Days = days

		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func decodeDaySelections(data []byte) ([]leave.DaySelection, error) {
	var raw []struct {
		Date    string `json:"date"`
		Portion string `json:"portion"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	days := make([]leave.DaySelection, 0, len(raw))
	for _, d := range raw {
		date, err := daterange.Parse(d.Date)
		if err != nil {
			return nil, err
		}
		days = append(days, leave.DaySelection{
			Date:    date,
			Portion: leave.Portion(d.Portion),
		})
	}

	return days, nil
}
