package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

func at(m time.Month, d, hh, mm int) time.Time {
	return time.Date(2024, m, d, hh, mm, 0, 0, time.UTC)
}

func reservationItem(start, end time.Time) Item {
	return FromRequest(models.Request{ID: 1, Start: start, End: end}, time.UTC)
}

func TestSplit_SingleDayIsNoop(t *testing.T) {
	it := reservationItem(at(3, 1, 9, 0), at(3, 1, 17, 0))

	head, _, ok := Split(it)
	assert.False(t, ok)
	assert.Equal(t, it, head)
}

func TestSplit_EndingOnNextMidnightIsSingleDay(t *testing.T) {
	it := reservationItem(at(3, 1, 22, 0), at(3, 2, 0, 0))

	assert.False(t, it.IsMultiDay())
	_, _, ok := Split(it)
	assert.False(t, ok)
}

func TestSplit_PeelsOneDay(t *testing.T) {
	it := reservationItem(at(3, 1, 22, 0), at(3, 3, 2, 0))

	head, tail, ok := Split(it)
	require.True(t, ok)
	assert.Equal(t, at(3, 1, 22, 0), head.Start)
	assert.Equal(t, at(3, 2, 0, 0), head.End)
	assert.Equal(t, at(3, 2, 0, 0), tail.Start)
	assert.Equal(t, at(3, 3, 2, 0), tail.End)
	assert.Same(t, it.Request, tail.Request)

	// the input is left untouched
	assert.Equal(t, at(3, 3, 2, 0), it.End)
}

func TestSplitAll_ThreeDayReservation(t *testing.T) {
	got := SplitAll([]Item{reservationItem(at(3, 1, 22, 0), at(3, 3, 2, 0))})

	require.Len(t, got, 3)
	want := [][2]time.Time{
		{at(3, 1, 22, 0), at(3, 2, 0, 0)},
		{at(3, 2, 0, 0), at(3, 3, 0, 0)},
		{at(3, 3, 0, 0), at(3, 3, 2, 0)},
	}
	for i, w := range want {
		assert.Equal(t, w[0], got[i].Start, "piece %d start", i)
		assert.Equal(t, w[1], got[i].End, "piece %d end", i)
	}
}

func TestSplitAll_KDaysGiveKContiguousPieces(t *testing.T) {
	start := at(1, 30, 13, 15)
	end := at(2, 6, 8, 45) // spans 8 calendar days

	got := SplitAll([]Item{reservationItem(start, end)})
	require.Len(t, got, 8)

	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, end, got[len(got)-1].End)
	for i, it := range got {
		assert.False(t, it.IsMultiDay())
		if i > 0 {
			assert.Equal(t, got[i-1].End, it.Start, "gap or overlap at piece %d", i)
		}
	}
}

func TestSplitAll_KeepsOriginalsFirst(t *testing.T) {
	long := reservationItem(at(3, 1, 20, 0), at(3, 2, 4, 0))
	short := reservationItem(at(3, 5, 9, 0), at(3, 5, 10, 0))

	got := SplitAll([]Item{long, short})
	require.Len(t, got, 3)
	assert.Equal(t, at(3, 1, 20, 0), got[0].Start)
	assert.Equal(t, at(3, 5, 9, 0), got[1].Start)
	assert.Equal(t, at(3, 2, 0, 0), got[2].Start)
}

func TestSplit_UsesLocalMidnight(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)
	it := FromRequest(models.Request{
		Start: time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC), // 12:00 local
		End:   time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC), // 02:00 local next day
	}, loc)

	head, tail, ok := Split(it)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, loc), head.End)
	assert.True(t, tail.Start.Equal(time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)))
}

func TestFromLoan_OccupancyPolicy(t *testing.T) {
	now := at(3, 4, 12, 0)

	t.Run("open loan runs until now", func(t *testing.T) {
		it := FromLoan(models.Loan{LoanID: "L1", LoanedOn: at(3, 2, 9, 0)}, now, time.UTC)
		assert.Equal(t, KindLoan, it.Kind)
		assert.Equal(t, at(3, 2, 9, 0), it.Start)
		assert.Equal(t, now, it.End)
		require.NotNil(t, it.Loan)
		assert.Equal(t, "L1", it.Loan.LoanID)
	})

	t.Run("returned loan runs until return", func(t *testing.T) {
		returned := at(3, 3, 15, 0)
		it := FromLoan(models.Loan{LoanedOn: at(3, 2, 9, 0), ReturnedOn: &returned}, now, time.UTC)
		assert.Equal(t, returned, it.End)
	})

	t.Run("loan starting after now is zero length", func(t *testing.T) {
		it := FromLoan(models.Loan{LoanedOn: at(3, 5, 9, 0)}, now, time.UTC)
		assert.Equal(t, it.Start, it.End)
	})
}
