package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type ReturnLoan struct {
	repo  domain.Repository
	alma  domain.AlmaAPI
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewReturnLoan(
	repo domain.Repository,
	alma domain.AlmaAPI,
	audit *audit.Dispatcher,
	now func() time.Time,
) *ReturnLoan {
	return &ReturnLoan{
		repo:  repo,
		alma:  alma,
		audit: audit,
		now:   orNow(now),
	}
}

func (uc *ReturnLoan) Execute(
	ctx context.Context,
	actorID uint,
	loanID string,
) (*models.Loan, error) {

	l, err := uc.repo.GetLoan(ctx, loanID)
	if err != nil {
		return nil, httperr.ErrBusiness("loan_not_found")
	}

	if err := domain.CanReturn(l); err != nil {
		return nil, err
	}

	if err := uc.alma.ReturnLoan(ctx, l.Item.BibID, l.ItemID); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	if err := domain.MarkReturned(l, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateLoan(ctx, l); err != nil {
		return nil, err
	}

	metrics.IncLoan("returned")

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(actorID),
		Action:   "loan_returned",
		Entity:   "loan",
		EntityID: l.LoanID,
	})

	return l, nil
}
