package timeutil

import "time"

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// DateOnly truncates a time to midnight UTC, keeping only the calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DatesBetween returns every calendar day in the closed range [start, end],
// one day at a time. The start is normalized to midnight; the end bound is
// compared as supplied, so a midnight end date is itself included.
// Returns nil when end precedes the start day.
func DatesBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for day := DateOnly(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
