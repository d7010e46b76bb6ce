package helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// CalendarLayout renders dates as "Mon Jan 02 2006".
const CalendarLayout = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

// Accepted input layouts, tried in order. Values without a zone are UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// ParseOptionalDate returns nil for an empty value.
func ParseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(CalendarLayout)
}
