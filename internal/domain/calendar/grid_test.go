package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

func TestWindowStart(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		page  int
		want  time.Time
	}{
		{"wednesday", at(3, 6, 15, 30), 0, at(3, 3, 0, 0)},
		{"sunday is its own week start", at(3, 3, 8, 0), 0, at(3, 3, 0, 0)},
		{"saturday", at(3, 9, 23, 59), 0, at(3, 3, 0, 0)},
		{"next page", at(3, 6, 15, 30), 1, at(6, 1, 0, 0)},
		{"previous page", at(3, 6, 15, 30), -1, time.Date(2023, 12, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WindowStart(tt.today, tt.page, DefaultWindowDays))
		})
	}
}

func TestNewGrid_SpansMonthBoundaries(t *testing.T) {
	g := NewGrid(at(1, 28, 0, 0), 7)

	require.Len(t, g.Months, 2)
	assert.Equal(t, at(1, 1, 0, 0), g.Months[0].Month)
	assert.Len(t, g.Months[0].Days, 4)
	assert.Equal(t, at(2, 1, 0, 0), g.Months[1].Month)
	assert.Len(t, g.Months[1].Days, 3)
}

func TestNewGrid_NinetyDaysGroupedByMonth(t *testing.T) {
	start := at(3, 3, 0, 0) // Sunday
	g := NewGrid(start, DefaultWindowDays)

	assert.Equal(t, DefaultWindowDays, g.Len())
	assert.Equal(t, at(6, 1, 0, 0), g.End)

	// March 3..31, all of April and May
	require.Len(t, g.Months, 3)
	wantMonths := []time.Month{time.March, time.April, time.May}
	wantDays := []int{29, 30, 31}

	total := 0
	prev := time.Time{}
	for i, m := range g.Months {
		assert.Equal(t, wantMonths[i], m.Month.Month())
		assert.Equal(t, 1, m.Month.Day())
		assert.Len(t, m.Days, wantDays[i])
		for _, d := range m.Days {
			assert.Equal(t, m.Month.Month(), d.Date.Month())
			assert.True(t, d.Date.After(prev))
			assert.Empty(t, d.Items)
			prev = d.Date
			total++
		}
	}
	assert.Equal(t, DefaultWindowDays, total)
}

func TestGrid_AddDropsItemsOutsideWindow(t *testing.T) {
	g := NewGrid(at(3, 3, 0, 0), 7)

	assert.True(t, g.Add(reservationItem(at(3, 3, 0, 0), at(3, 3, 1, 0))))
	assert.True(t, g.Add(reservationItem(at(3, 9, 23, 0), at(3, 9, 23, 30))))
	assert.False(t, g.Add(reservationItem(at(3, 2, 23, 0), at(3, 2, 23, 30))))
	assert.False(t, g.Add(reservationItem(at(3, 10, 0, 0), at(3, 10, 1, 0))))

	assert.Len(t, g.Day(at(3, 3, 12, 0)).Items, 1)
	assert.Len(t, g.Day(at(3, 9, 0, 0)).Items, 1)
	assert.Nil(t, g.Day(at(3, 10, 0, 0)))
}

func TestCompose_TailEntersWindow(t *testing.T) {
	start := at(3, 3, 0, 0)
	items := []Item{
		// starts before the window, its tail lands on the first day
		reservationItem(at(3, 2, 20, 0), at(3, 3, 3, 0)),
		// spans three days inside the window
		FromLoan(models.Loan{LoanID: "L9", LoanedOn: at(3, 4, 18, 0)}, at(3, 6, 9, 0), time.UTC),
	}

	g, pieces := Compose(start, 7, items)

	assert.Len(t, pieces, 5)
	assert.Len(t, g.Day(at(3, 3, 0, 0)).Items, 1)
	assert.Equal(t, at(3, 3, 0, 0), g.Day(at(3, 3, 0, 0)).Items[0].Start)
	assert.Len(t, g.Day(at(3, 4, 0, 0)).Items, 1)
	assert.Len(t, g.Day(at(3, 5, 0, 0)).Items, 1)
	assert.Len(t, g.Day(at(3, 6, 0, 0)).Items, 1)
	assert.Equal(t, KindLoan, g.Day(at(3, 6, 0, 0)).Items[0].Kind)
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels()
	require.Len(t, labels, 24)
	assert.Equal(t, "12am", labels[0])
	assert.Equal(t, "1am", labels[1])
	assert.Equal(t, "11am", labels[11])
	assert.Equal(t, "12pm", labels[12])
	assert.Equal(t, "11pm", labels[23])
}
