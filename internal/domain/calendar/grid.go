package calendar

import (
	"strconv"
	"time"
)

const DefaultWindowDays = 90

// Day holds the items starting on one local date.
type Day struct {
	Date  time.Time `json:"date"`
	Items []Item    `json:"items"`
}

func (d *Day) Add(it Item) {
	d.Items = append(d.Items, it)
}

// Month groups consecutive days of one month. Month is the first of the month.
type Month struct {
	Month time.Time `json:"month"`
	Days  []*Day    `json:"days"`
}

// Grid is the calendar window: months in chronological order, each with its
// days in chronological order. Every day of the window has a bucket, even
// when empty.
type Grid struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Months []*Month  `json:"months"`

	index map[string]*Day
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewGrid builds empty buckets for [start, start+days). start is expected
// to be a local midnight.
func NewGrid(start time.Time, days int) *Grid {
	g := &Grid{
		Start: start,
		index: make(map[string]*Day, days),
	}

	y, m, d := start.Date()
	loc := start.Location()

	var current *Month
	for i := 0; i < days; i++ {
		day := time.Date(y, m, d+i, 0, 0, 0, 0, loc)
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, loc)

		if current == nil || !current.Month.Equal(first) {
			current = &Month{Month: first}
			g.Months = append(g.Months, current)
		}

		bucket := &Day{Date: day, Items: []Item{}}
		current.Days = append(current.Days, bucket)
		g.index[dayKey(day)] = bucket
	}

	g.End = time.Date(y, m, d+days, 0, 0, 0, 0, loc)
	return g
}

// Contains reports whether t falls in [Start, End).
func (g *Grid) Contains(t time.Time) bool {
	return !t.Before(g.Start) && t.Before(g.End)
}

// Add puts the item in the bucket of its start date. Items starting outside
// the window are dropped and Add returns false.
func (g *Grid) Add(it Item) bool {
	if !g.Contains(it.Start) {
		return false
	}
	bucket, ok := g.index[dayKey(it.Start.In(g.Start.Location()))]
	if !ok {
		return false
	}
	bucket.Add(it)
	return true
}

func (g *Grid) Day(t time.Time) *Day {
	return g.index[dayKey(t.In(g.Start.Location()))]
}

// Len is the number of day buckets.
func (g *Grid) Len() int {
	return len(g.index)
}

// WindowStart returns the Sunday at or before today, moved by page windows,
// at local midnight.
func WindowStart(today time.Time, page, windowDays int) time.Time {
	y, m, d := today.Date()
	back := int(today.Weekday())
	return time.Date(y, m, d-back+page*windowDays, 0, 0, 0, 0, today.Location())
}

// Compose normalizes items into single-day pieces and buckets them into a
// grid for [start, start+days). It returns the grid and every piece,
// including those that fell outside the window.
func Compose(start time.Time, days int, items []Item) (*Grid, []Item) {
	grid := NewGrid(start, days)

	pieces := SplitAll(items)
	for _, it := range pieces {
		grid.Add(it)
	}

	return grid, pieces
}

// HourLabels are the row labels of a day column, "12am" through "11pm".
func HourLabels() []string {
	labels := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		hour := h % 12
		if hour == 0 {
			hour = 12
		}
		suffix := "am"
		if h >= 12 {
			suffix = "pm"
		}
		labels = append(labels, strconv.Itoa(hour)+suffix)
	}
	return labels
}
