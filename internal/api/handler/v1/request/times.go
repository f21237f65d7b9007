package request

import (
	"fmt"
	"regexp"
	"time"
)

// Form entry formats next to the wire format. Browser datetime-local inputs
// drop seconds and the timezone; date pickers emit the date alone.
const (
	datetimeLocalLayout = "2006-01-02T15:04"
	dateOnlyLayout      = "2006-01-02"
)

var durationShortExp = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// parseFormTime accepts RFC 3339 and the two browser entry formats. Entry
// formats have no zone and are interpreted as UTC; a date without a time maps
// to midnight.
func parseFormTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(datetimeLocalLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

func parseFormTimePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := parseFormTime(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// normalizeDuration pads "HH:MM" to the "HH:MM:SS" the backend stores.
func normalizeDuration(value string) string {
	if durationShortExp.MatchString(value) {
		return value + ":00"
	}
	return value
}
