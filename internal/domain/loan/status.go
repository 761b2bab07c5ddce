package loan

import (
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

// CanReturn rejects loans that were already checked in.
func CanReturn(l *models.Loan) error {
	if !l.IsOpen() {
		return httperr.ErrBusiness("loan_already_returned")
	}
	return nil
}

// MarkReturned checks the loan in locally. The Alma side must already be done.
func MarkReturned(l *models.Loan, now time.Time) error {
	if err := CanReturn(l); err != nil {
		return err
	}
	l.ReturnedOn = &now
	return nil
}
