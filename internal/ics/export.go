package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/calendar"
)

const productID = "-//alma-scheduler//calendar//EN"

// Export renders the grid's items as a VCALENDAR. Each single-day piece is
// one VEVENT, so a reservation spanning three days gives three events.
func Export(grid *calendar.Grid, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, month := range grid.Months {
		for _, day := range month.Days {
			for _, it := range day.Items {
				ev := cal.AddEvent(eventUID(it))
				ev.SetDtStampTime(stamp)
				ev.SetStartAt(it.Start)
				ev.SetEndAt(it.End)
				ev.SetSummary(summary(it))
			}
		}
	}

	return cal.Serialize()
}

func eventUID(it calendar.Item) string {
	day := it.Start.Format("20060102")
	switch it.Kind {
	case calendar.KindLoan:
		if it.Loan != nil {
			return fmt.Sprintf("loan-%s-%s@alma-scheduler", it.Loan.LoanID, day)
		}
	case calendar.KindReservation:
		if it.Request != nil {
			return fmt.Sprintf("request-%d-%s@alma-scheduler", it.Request.ID, day)
		}
	}
	return fmt.Sprintf("%s-%d@alma-scheduler", it.Kind, it.Start.Unix())
}

func summary(it calendar.Item) string {
	switch {
	case it.Kind == calendar.KindLoan && it.Loan != nil:
		return fmt.Sprintf("Loan: %s (%s)", it.Loan.Item.Bib.String(), it.Loan.User.Username)
	case it.Request != nil:
		res := it.Request.Reservation
		return fmt.Sprintf("%s (%s)", res.Bib.String(), res.User.Username)
	}
	return string(it.Kind)
}
