package leave

import "time"

type RequestStatus string

const (
	StatusApproved  RequestStatus = "APPROVED"
	StatusPending   RequestStatus = "PENDING"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

var RequestStatusValues = []string{
	string(StatusApproved),
	string(StatusPending),
	string(StatusRejected),
	string(StatusCancelled),
}

// Portion is the day-portion of a leave day selection.
type Portion string

const (
	PortionFull Portion = "FULL"
	PortionHalf Portion = "HALF"
)

// DaySelection is one calendar date within a leave request.
type DaySelection struct {
	Date    time.Time
	Portion Portion
}

// Request aggregates a leave application and its day selections. Only
// APPROVED requests contribute to calendar resolution; the rest are carried
// for listing surfaces owned by the leave collaborator.
type Request struct {
	ID            string
	StaffID       string
	Status        RequestStatus
	Subject       string
	RelatedReason string
	ApproverName  string
	Days          []DaySelection
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
