package handlers

import (
	"errors"
	"strings"
	"time"
)

var errInvalidTime = errors.New("invalid_time")

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// parseDateTime accepts RFC 3339 or a wall-clock time in loc.
func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidTime
}

// parseOptionalDate parses a "2006-01-02" date in loc. Empty gives nil.
func parseOptionalDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return nil, errInvalidTime
	}
	return &t, nil
}
