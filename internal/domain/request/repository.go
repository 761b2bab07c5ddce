package request

import (
	"context"
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	ListBibs(
		ctx context.Context,
		mmsIDs []string,
	) ([]models.Bib, error)

	GetUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	// -------- Reservations --------

	// CreateReservations stores the reservations and their requests
	// atomically.
	CreateReservations(
		ctx context.Context,
		reservations []*models.Reservation,
	) error

	GetRequest(
		ctx context.Context,
		requestID uint,
	) (*models.Request, error)

	// DeleteRequest removes the request and, when it was the last one, its
	// reservation. It reports whether the reservation was removed.
	DeleteRequest(
		ctx context.Context,
		req *models.Request,
	) (bool, error)

	ListRequestsForUserEndingBetween(
		ctx context.Context,
		email string,
		from time.Time,
		to time.Time,
	) ([]models.Request, error)
}
