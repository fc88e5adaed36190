package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrUnknownStatus  = errors.New("unknown attendance status code")
)
