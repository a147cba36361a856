package models

import "time"

const (
	// DateLayout is the calendar-date format used by every dated entity.
	DateLayout = "2006-01-02"
	// MonthLayout identifies a calendar month, e.g. "2024-01".
	MonthLayout = "2006-01"
)

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthOf returns the YYYY-MM prefix of a YYYY-MM-DD date, or "" when the
// date is too short to carry one.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return ""
	}
	return date[:len(MonthLayout)]
}
