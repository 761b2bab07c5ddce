package request

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
)

type DeleteRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteRequest {
	return &DeleteRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteRequest) Execute(
	ctx context.Context,
	actorID uint,
	requestID uint,
) error {

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return httperr.ErrBusiness("request_not_found")
	}

	reservationGone, err := uc.repo.DeleteRequest(ctx, req)
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor(actorID),
		Action:   "request_deleted",
		Entity:   "request",
		EntityID: strconv.FormatUint(uint64(req.ID), 10),
		Metadata: map[string]any{
			"reservation_id":      req.ReservationID,
			"reservation_deleted": reservationGone,
		},
	})

	return nil
}

// actor maps the anonymous actor 0 to no user.
func actor(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
