package request

import (
	"context"
	"strconv"
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	ActorID  uint
	Username string

	MmsIDs         []string
	Start          time.Time
	End            time.Time
	EndRepeatingOn *time.Time
	RepeatOn       recurrence.Weekdays
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute creates one reservation per bib, each holding one request per
// generated interval. Nothing is stored if any part fails.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) ([]*models.Reservation, error) {

	if len(in.MmsIDs) == 0 {
		return nil, httperr.ErrBusiness("mms_ids_required")
	}

	// --------------------------------------------------
	// Intervals
	// --------------------------------------------------
	intervals, err := expand(domain.AvailabilityInput{
		Start:          in.Start,
		End:            in.End,
		EndRepeatingOn: in.EndRepeatingOn,
		RepeatOn:       in.RepeatOn,
	})
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return nil, httperr.ErrBusiness("no_intervals")
	}

	// --------------------------------------------------
	// Patron + bibs
	// --------------------------------------------------
	user, err := uc.repo.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	bibs, err := lookupBibs(ctx, uc.repo, in.MmsIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Build + persist
	// --------------------------------------------------
	createdBy := actor(in.ActorID)

	reservations := make([]*models.Reservation, 0, len(bibs))
	for _, bib := range bibs {
		r := &models.Reservation{
			BibID:       bib.MmsID,
			UserID:      user.ID,
			CreatedByID: createdBy,
			Requests:    make([]models.Request, 0, len(intervals)),
		}
		for _, iv := range intervals {
			r.Requests = append(r.Requests, models.Request{
				Start: iv.Start,
				End:   iv.End,
			})
		}
		reservations = append(reservations, r)
	}

	if err := uc.repo.CreateReservations(ctx, reservations); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	for _, r := range reservations {
		uc.audit.Dispatch(audit.Event{
			UserID:   createdBy,
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: strconv.FormatUint(uint64(r.ID), 10),
			Metadata: map[string]any{
				"mms_id":   r.BibID,
				"user_id":  r.UserID,
				"requests": len(r.Requests),
			},
		})
	}

	return reservations, nil
}
