package employee

import (
	"fmt"
	"strings"
	"time"
)

// calendarLayouts are the representations a date value may arrive in after a
// round trip through the transport layer: a plain calendar date, an RFC 3339
// timestamp with or without offset, or a stringified time value.
var calendarLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700 MST",
	time.RFC1123,
}

// ParseCalendarDate extracts the calendar day denoted by value, ignoring
// time-of-day and zone offset. The year-month-day is taken as written, not
// converted into any local timezone.
func ParseCalendarDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range calendarLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// FormatCalendarDate renders a fixed zero-padded YYYY-MM-DD string from the
// value's own date components, independent of locale and local timezone.
func FormatCalendarDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// truncateToDay keeps only the calendar-day component of a reference instant.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
