// file: internals/helpers/dates.go
package helper

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date (no time component) into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateOnly truncates t to UTC midnight so date columns compare cleanly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }
