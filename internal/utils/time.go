package utils

import (
	"strings"
	"time"
)

const (
	layoutDate  = "2006-01-02"
	layoutMonth = "2006-01"
)

// ParseMonth parses YYYY-MM in loc and returns the first day of that month.
func ParseMonth(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(layoutMonth, strings.TrimSpace(s), loc)
}

// FormatDate formats time to YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatMonth formats time to YYYY-MM.
func FormatMonth(t time.Time) string {
	return t.Format(layoutMonth)
}
