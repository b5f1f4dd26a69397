// Package dateutils provides the date parsing and formatting helpers used
// throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application
const (
	LayoutISO   = "2006-01-02"
	LayoutSlash = "2006/01/02"
)

// InputFormats lists the formats accepted from interactive input, in the
// order they are tried.
var InputFormats = []string{
	LayoutISO,
	LayoutSlash,
}

// ParseInput parses a user-supplied date string against the accepted input
// formats and returns it normalized to a time.Time.
func ParseInput(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	for _, format := range InputFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD), the
// store's canonical date form.
func ToISODate(date time.Time) string {
	return date.Format(LayoutISO)
}

// Today returns the current local date in the store's canonical form.
func Today() string {
	return ToISODate(time.Now())
}
