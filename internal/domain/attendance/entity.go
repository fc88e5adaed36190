package attendance

import "time"

// Status is the closed set of attendance status codes. Unknown codes are a
// decode-time failure, not a silent blank cell at render time.
type Status string

const (
	StatusPresent    Status = "P"
	StatusAbsent     Status = "AB"
	StatusHalfDay    Status = "HD"
	StatusInProgress Status = "IN_PROGRESS"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusInProgress),
}

// Known reports whether s is one of the closed status codes.
func (s Status) Known() bool {
	for _, v := range StatusValues {
		if v == string(s) {
			return true
		}
	}
	return false
}

// Record is one staff member's attendance row for one calendar date. Records
// are created and mutated by the attendance-logging collaborator; this
// service only reads them.
type Record struct {
	ID                 string
	StaffID            string
	Date               time.Time
	Status             Status
	LoginTime          *time.Time
	LogoutTime         *time.Time
	TotalWorkedMinutes int
	IsEarlyLogin       bool
	IsLateLogin        bool
	IsEarlyLogout      bool
	IsLateLogout       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
