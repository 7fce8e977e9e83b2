package utils

import "time"

// StartOfDay truncates t to midnight in the server's local zone.
// Journal entries and the "today's messages" view are keyed by this boundary.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today is StartOfDay(now).
func Today() time.Time {
	return StartOfDay(time.Now())
}

// Truncate returns at most max characters of s, respecting rune boundaries.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
