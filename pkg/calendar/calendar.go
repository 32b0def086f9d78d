// Package calendar provides month arithmetic that keeps the anchor day where
// the target month allows it and clamps to the month's last day otherwise.
package calendar

import (
	"time"

	"github.com/jinzhu/now"
)

// AddMonths moves t by n calendar months. Jan 31 + 1 month is Feb 28 (or 29),
// not Mar 3 as time.AddDate would return. Clock time and location are kept.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())

	day := t.Day()
	if last := now.With(first).EndOfMonth().Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DateLayout is the wire format for calendar dates (processed_at, due_date,
// received_at).
const DateLayout = "2006-01-02"

// ParseDate parses a DateLayout string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders t's calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// StartOfDay returns midnight UTC of t's UTC calendar date.
func StartOfDay(t time.Time) time.Time {
	return now.With(t.UTC()).BeginningOfDay()
}
