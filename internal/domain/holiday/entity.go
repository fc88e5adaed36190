package holiday

import "time"

// Holiday marks one calendar date company-wide. Holidays are global, not
// staff-specific, and take the highest precedence in calendar resolution.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
