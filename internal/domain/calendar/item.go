package calendar

import (
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type Kind string

const (
	KindReservation Kind = "reservation"
	KindLoan        Kind = "loan"
)

// Item is one occupancy shown on the calendar. Exactly one of Request and
// Loan is set, according to Kind.
type Item struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  Kind      `json:"kind"`

	Request *models.Request `json:"request,omitempty"`
	Loan    *models.Loan    `json:"loan,omitempty"`
}

func FromRequest(r models.Request, loc *time.Location) Item {
	return Item{
		Start:   r.Start.In(loc),
		End:     r.End.In(loc),
		Kind:    KindReservation,
		Request: &r,
	}
}

// FromLoan maps a loan to the span it occupies: LoanedOn until ReturnedOn,
// or until now while the loan is still open. A loan that starts after now
// is a zero-length item at LoanedOn.
func FromLoan(l models.Loan, now time.Time, loc *time.Location) Item {
	end := now
	if l.ReturnedOn != nil {
		end = *l.ReturnedOn
	}
	if end.Before(l.LoanedOn) {
		end = l.LoanedOn
	}

	return Item{
		Start: l.LoanedOn.In(loc),
		End:   end.In(loc),
		Kind:  KindLoan,
		Loan:  &l,
	}
}

// Day is the local date of the item's start, at midnight.
func (it Item) Day() time.Time {
	return midnight(it.Start)
}

// IsMultiDay reports whether the item runs past the midnight following its
// start. An item ending exactly on that midnight is a single-day item.
func (it Item) IsMultiDay() bool {
	return it.End.After(nextMidnight(it.Start))
}

// Split cuts a multi-day item at the midnight following its start. The head
// ends on that midnight and the tail starts there. For a single-day item ok
// is false and head is the item unchanged.
func Split(it Item) (head Item, tail Item, ok bool) {
	if !it.IsMultiDay() {
		return it, Item{}, false
	}

	boundary := nextMidnight(it.Start)

	head = it
	head.End = boundary

	tail = it
	tail.Start = boundary

	return head, tail, true
}

// SplitAll splits every item until each one covers a single day. Tails are
// queued behind the input so they get split again; the result holds the
// original items (truncated) followed by the tails in the order they were
// produced.
func SplitAll(items []Item) []Item {
	queue := make([]Item, len(items))
	copy(queue, items)

	out := make([]Item, 0, len(items))
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		head, tail, ok := Split(it)
		out = append(out, head)
		if ok {
			queue = append(queue, tail)
		}
	}

	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
