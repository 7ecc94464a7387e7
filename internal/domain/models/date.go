package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for date-only fields (ISO-8601 calendar date).
const DateLayout = "2006-01-02"

// TimestampLayout is the wire format for creation/update timestamps.
const TimestampLayout = time.RFC3339

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	// Tolerate full timestamps by keeping the calendar-date prefix.
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	return time.Parse(DateLayout, value)
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Timestamp renders a time in the timestamp wire format.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
