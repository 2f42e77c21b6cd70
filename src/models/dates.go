package models

import (
	"fmt"
	"time"
)

const venueDateLayout = "2006-01-02"

// ParseVenueDate parses the venue's calendar-date format. Some read paths
// return a full timestamp; only the date part is significant.
func ParseVenueDate(value string) (time.Time, error) {
	if len(value) > len(venueDateLayout) {
		value = value[:len(venueDateLayout)]
	}

	t, err := time.Parse(venueDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseVenueDate: failed to parse date %q: %w", value, err)
	}

	return t, nil
}

// FormatVenueDate serializes a date for the venue: a calendar date with no
// time component.
func FormatVenueDate(t time.Time) string {
	return t.Format(venueDateLayout)
}
