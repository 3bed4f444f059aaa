package utils

import "time"

// Clock supplies "now" to the business services so date-sensitive rules
// (start-date-in-the-past, late fees) are testable with fixed times.
type Clock func() time.Time

// UTCNow is the production clock.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// DateOnly truncates t to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WholeDaysBetween returns the number of whole calendar days from the date
// component of start to the date component of end. Negative when end is
// earlier.
func WholeDaysBetween(start, end time.Time) int32 {
	return int32(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}
