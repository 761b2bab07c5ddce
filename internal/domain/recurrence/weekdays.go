package recurrence

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekdays is a bitmask of time.Weekday values.
type Weekdays uint8

func NewWeekdays(days ...time.Weekday) Weekdays {
	var w Weekdays
	for _, d := range days {
		w |= 1 << uint(d)
	}
	return w
}

func (w Weekdays) Has(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

func (w Weekdays) IsEmpty() bool {
	return w&0x7f == 0
}

// Days returns the weekdays in the mask, Sunday first.
func (w Weekdays) Days() []time.Weekday {
	out := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// ParseWeekday accepts English day names ("mon", "Monday") or Go weekday
// numbers ("0" is Sunday).
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := weekdayNames[s]; ok {
		return d, nil
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
		return time.Weekday(n), nil
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

func (w Weekdays) shortNames() []string {
	names := make([]string, 0, 7)
	for _, d := range w.Days() {
		names = append(names, strings.ToLower(d.String()[:3]))
	}
	return names
}

func (w Weekdays) String() string {
	return strings.Join(w.shortNames(), ",")
}

func (w Weekdays) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.shortNames())
}

func (w *Weekdays) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("repeat_on must be a list: %w", err)
	}

	var mask Weekdays
	for _, r := range raw {
		var s string
		if err := json.Unmarshal(r, &s); err != nil {
			var n int
			if err := json.Unmarshal(r, &n); err != nil {
				return fmt.Errorf("invalid weekday %s", string(r))
			}
			s = strconv.Itoa(n)
		}

		d, err := ParseWeekday(s)
		if err != nil {
			return err
		}
		mask |= NewWeekdays(d)
	}

	*w = mask
	return nil
}
