// Package daterange provides inclusive calendar-date enumeration and the
// canonical ISO date representation used for every per-date map key in the
// system. Date keys are always "YYYY-MM-DD" strings produced by Format;
// locale-formatted strings must never be used as map keys.
package daterange

import (
	"errors"
	"time"
)

// Layout is the canonical ISO date layout for keys and wire values.
const Layout = "2006-01-02"

var (
	ErrInvalidRange = errors.New("to date is before from date")
	ErrRangeTooLong = errors.New("date range exceeds the maximum allowed span")
	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
)

// Normalize strips the time-of-day component so that two timestamps on the
// same calendar day compare equal.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders t as a canonical ISO date key.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a canonical ISO date key.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Days returns the inclusive number of calendar days between from and to.
// It returns ErrInvalidRange when to is before from.
func Days(from, to time.Time) (int, error) {
	from, to = Normalize(from), Normalize(to)
	if to.Before(from) {
		return 0, ErrInvalidRange
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}

// Enumerate returns the ascending, inclusive sequence of calendar dates
// between from and to. Both endpoints are emitted exactly once.
func Enumerate(from, to time.Time) ([]time.Time, error) {
	n, err := Days(from, to)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, n)
	for d := Normalize(from); !d.After(Normalize(to)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// EnumerateBounded behaves like Enumerate but additionally rejects ranges
// spanning more than maxDays inclusive days with ErrRangeTooLong. A span of
// exactly maxDays is accepted.
func EnumerateBounded(from, to time.Time, maxDays int) ([]time.Time, error) {
	n, err := Days(from, to)
	if err != nil {
		return nil, err
	}
	if n > maxDays {
		return nil, ErrRangeTooLong
	}
	return Enumerate(from, to)
}

// IsRangeError reports whether err belongs to the invalid-range error class
// (ordering violation or span overflow).
func IsRangeError(err error) bool {
	return errors.Is(err, ErrInvalidRange) || errors.Is(err, ErrRangeTooLong)
}
