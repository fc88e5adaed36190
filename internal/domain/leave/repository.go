package leave

import (
	"context"
	"time"
)

type Repository interface {
	// GetByStaffAndRange returns requests having at least one day selection
	// inside [from, to], with all day selections attached.
	GetByStaffAndRange(ctx context.Context, staffID string, from, to time.Time) ([]Request, error)
}
