package timezone

import "time"

const DefaultTimezone = "America/Los_Angeles"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Clock returns a now function bound to tz.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}
