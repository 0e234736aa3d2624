package domain

import "time"

// DateLayout is the wire and storage layout of business dates.
const DateLayout = "2006-01-02"

// TruncateToDate drops the clock part of t, keeping its calendar date in UTC.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD business date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
