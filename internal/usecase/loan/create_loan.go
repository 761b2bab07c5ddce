package loan

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

// compensateTimeout bounds the Alma return issued when the local write
// fails. It runs detached from the request context.
const compensateTimeout = 10 * time.Second

// ======================================================
// INPUT
// ======================================================

type CreateLoanInput struct {
	ActorID  uint
	Username string
	ItemID   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateLoan struct {
	repo   domain.Repository
	alma   domain.AlmaAPI
	audit  *audit.Dispatcher
	logger *zerolog.Logger
	now    func() time.Time
}

func NewCreateLoan(
	repo domain.Repository,
	alma domain.AlmaAPI,
	audit *audit.Dispatcher,
	logger *zerolog.Logger,
	now func() time.Time,
) *CreateLoan {
	return &CreateLoan{
		repo:   repo,
		alma:   alma,
		audit:  audit,
		logger: orNop(logger),
		now:    orNow(now),
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute checks the item out in Alma and records the loan locally. If the
// local write fails the Alma loan is returned again.
func (uc *CreateLoan) Execute(
	ctx context.Context,
	in CreateLoanInput,
) (*models.Loan, error) {

	// --------------------------------------------------
	// Patron + item
	// --------------------------------------------------
	user, err := uc.repo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	item, err := uc.repo.GetItem(ctx, in.ItemID)
	if err != nil {
		return nil, httperr.ErrBusiness("item_not_found")
	}

	busy, err := uc.repo.HasOpenLoanForItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, httperr.ErrBusiness("item_already_loaned")
	}

	// --------------------------------------------------
	// Alma
	// --------------------------------------------------
	loanID, err := uc.alma.CreateLoan(ctx, user.Username, item.Barcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	// --------------------------------------------------
	// Local record
	// --------------------------------------------------
	l := &models.Loan{
		LoanID:   loanID,
		ItemID:   item.ID,
		Item:     *item,
		UserID:   user.ID,
		User:     *user,
		LoanedOn: uc.now(),
	}

	if err := uc.repo.CreateLoan(ctx, l); err != nil {
		uc.compensate(ctx, loanID, item)
		return nil, err
	}

	metrics.IncLoan("created")

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(in.ActorID),
		Action:   "loan_created",
		Entity:   "loan",
		EntityID: l.LoanID,
		Metadata: map[string]any{
			"item_id": item.ID,
			"user_id": user.ID,
		},
	})

	return l, nil
}

// compensate returns a loan that Alma accepted but that could not be stored.
// A cancelled request must not stop the return from reaching Alma.
func (uc *CreateLoan) compensate(ctx context.Context, loanID string, item *models.Item) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensateTimeout)
	defer cancel()

	if err := uc.alma.ReturnLoan(cctx, item.BibID, item.ID); err != nil {
		uc.logger.Error().Err(err).
			Str("loan_id", loanID).
			Str("item_id", item.ID).
			Msg("loan saved in alma but not locally; return failed")
	}
}
