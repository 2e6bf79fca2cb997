// Package rentalcalc derives rental periods and charges. Durations are
// whole days on an inclusive range: a 1-day rental starts and ends on the
// same date.
package rentalcalc

import (
	"errors"
	"time"
)

var ErrPastStart = errors.New("start date is in the past")

// Day truncates a timestamp to date granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndDate is start + (days-1), inclusive range.
func EndDate(start time.Time, days int) time.Time {
	return Day(start).AddDate(0, 0, days-1)
}

// ClampDuration caps the requested duration at the product ceiling. A max
// of zero or less means the product has no ceiling. The clamped flag lets
// the caller raise the "maximum rental period" notice.
func ClampDuration(requested, max int) (days int, clamped bool) {
	if max > 0 && requested > max {
		return max, true
	}
	return requested, false
}

// Cost is the authoritative total snapshot stored on a rent line: the
// daily charge over the period plus the refundable deposit.
func Cost(dailyRate float64, days int, deposit float64) float64 {
	return dailyRate*float64(days) + deposit
}

// ValidateStart rejects start dates strictly before today at day
// granularity. Past dates fail validation; they are never clamped.
func ValidateStart(start, today time.Time) error {
	if Day(start).Before(Day(today)) {
		return ErrPastStart
	}
	return nil
}
