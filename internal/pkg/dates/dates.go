package dates

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Layouts accepted for dates in request bodies and query strings, most specific first.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// Parse reads value using Layouts. Values without an offset are read in loc.
func Parse(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// StartOfDay returns 00:00:00 of t's day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay returns 23:59:00 of t's day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, loc)
}
