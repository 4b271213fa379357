// internal/periodization/calendar.go
package periodization

import (
	"time"
)

// DateLayout is the calendar-date format used throughout the engine.
// Dates carry no time zone; we anchor them at UTC noon so that week
// arithmetic can never drift across a day boundary.
const DateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD string and anchors it at UTC noon.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// MondayOf returns the Monday of the week containing the given date.
// Sunday counts as the last day of its week, so a Sunday maps six days
// back, not one day forward.
func MondayOf(date string) (string, error) {
	d, err := parseDate(date)
	if err != nil {
		return "", err
	}
	var diff int
	if wd := d.Weekday(); wd == time.Sunday {
		diff = -6
	} else {
		diff = int(time.Monday) - int(wd)
	}
	return d.AddDate(0, 0, diff).Format(DateLayout), nil
}

// AddWeeks returns the date n*7 days after the given Monday-aligned date.
func AddWeeks(monday string, n int) (string, error) {
	d, err := parseDate(monday)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n*7).Format(DateLayout), nil
}
