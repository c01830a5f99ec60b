package utils

import "time"

// DaysBetween returns the number of whole 24h days from start to end,
// truncated toward zero. Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}

// LateDays returns how many whole days past the expected end date the
// return happened, never negative.
func LateDays(expectedEnd, returned time.Time) int {
	if !returned.After(expectedEnd) {
		return 0
	}
	return DaysBetween(expectedEnd, returned)
}
