package calendar

import (
	"context"
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type Repository interface {
	// Requests whose start is in [start, end), ordered by id, with their
	// reservation, bib and user loaded.
	ListRequestsStartingBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Request, error)

	// Loans not yet returned that were loaned on or after since.
	ListOpenLoansSince(
		ctx context.Context,
		since time.Time,
	) ([]models.Loan, error)
}
