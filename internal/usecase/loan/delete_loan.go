package loan

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
)

// DeleteLoan removes a loan record. An open loan is returned in Alma first.
type DeleteLoan struct {
	repo  domain.Repository
	alma  domain.AlmaAPI
	audit *audit.Dispatcher
}

func NewDeleteLoan(
	repo domain.Repository,
	alma domain.AlmaAPI,
	audit *audit.Dispatcher,
) *DeleteLoan {
	return &DeleteLoan{
		repo:  repo,
		alma:  alma,
		audit: audit,
	}
}

func (uc *DeleteLoan) Execute(
	ctx context.Context,
	actorID uint,
	loanID string,
) error {

	l, err := uc.repo.GetLoan(ctx, loanID)
	if err != nil {
		return httperr.ErrBusiness("loan_not_found")
	}

	wasOpen := l.IsOpen()
	if wasOpen {
		if err := uc.alma.ReturnLoan(ctx, l.Item.BibID, l.ItemID); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}
	}

	if err := uc.repo.DeleteLoan(ctx, l); err != nil {
		return err
	}

	metrics.IncLoan("deleted")

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(actorID),
		Action:   "loan_deleted",
		Entity:   "loan",
		EntityID: l.LoanID,
		Metadata: map[string]any{"was_open": wasOpen},
	})

	return nil
}
