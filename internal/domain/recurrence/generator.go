package recurrence

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var ErrInvalidRange = errors.New("invalid_range")

// Interval is one concrete occurrence of a (possibly repeating) request.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var rruleWeekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// Generate expands a request into concrete intervals.
//
// Without endRepeatingOn the result is the single interval (start, end).
// Otherwise every date from start up to and including endRepeatingOn whose
// weekday is in repeatOn produces one interval with the same wall-clock
// start/end times (and the same day offset between them) as (start, end).
// Intervals are returned in chronological order.
func Generate(
	start time.Time,
	end time.Time,
	endRepeatingOn *time.Time,
	repeatOn Weekdays,
) ([]Interval, error) {

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange, end, start)
	}

	if endRepeatingOn == nil {
		return []Interval{{Start: start, End: end}}, nil
	}

	loc := start.Location()
	end = end.In(loc)

	// occurrences are local midnights, so comparing dates is enough
	y, m, d := endRepeatingOn.Date()
	until := time.Date(y, m, d, 0, 0, 0, 0, loc)

	if until.Before(dateOf(start)) || repeatOn.IsEmpty() {
		return []Interval{}, nil
	}

	byDay := make([]rrule.Weekday, 0, 7)
	for _, wd := range repeatOn.Days() {
		byDay = append(byDay, rruleWeekdays[wd])
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   dateOf(start),
		Until:     until,
		Byweekday: byDay,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	offset := daysBetween(start, end)

	occurrences := rule.All()
	out := make([]Interval, 0, len(occurrences))
	for _, occ := range occurrences {
		oy, om, od := occ.Date()
		out = append(out, Interval{
			Start: time.Date(oy, om, od,
				start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), loc),
			End: time.Date(oy, om, od+offset,
				end.Hour(), end.Minute(), end.Second(), end.Nanosecond(), loc),
		})
	}

	return out, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
