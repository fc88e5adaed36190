package attendance

import (
	"context"
	"time"
)

type Repository interface {
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (Record, error)
	GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]Record, error)
}
