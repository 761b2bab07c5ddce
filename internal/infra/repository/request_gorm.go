package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

var _ domain.Repository = (*RequestGormRepository)(nil)

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *RequestGormRepository) ListBibs(
	ctx context.Context,
	mmsIDs []string,
) ([]models.Bib, error) {

	var bibs []models.Bib
	if len(mmsIDs) == 0 {
		return bibs, nil
	}

	err := r.db.WithContext(ctx).
		Where("mms_id IN ?", mmsIDs).
		Find(&bibs).Error

	return bibs, err
}

func (r *RequestGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {
	return getUserByUsername(ctx, r.db, username)
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *RequestGormRepository) CreateReservations(
	ctx context.Context,
	reservations []*models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, res := range reservations {
			if err := tx.
				Omit("Bib", "User", "CreatedBy").
				Create(res).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RequestGormRepository) GetRequest(
	ctx context.Context,
	requestID uint,
) (*models.Request, error) {

	var req models.Request
	if err := r.db.WithContext(ctx).
		Preload("Reservation").
		First(&req, requestID).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestGormRepository) DeleteRequest(
	ctx context.Context,
	req *models.Request,
) (bool, error) {

	reservationGone := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialize concurrent deletes on the same reservation
		var res models.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&res, req.ReservationID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Request{}, req.ID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.Request{}).
			Where("reservation_id = ?", res.ID).
			Count(&remaining).Error; err != nil {
			return err
		}

		if remaining == 0 {
			if err := tx.Delete(&res).Error; err != nil {
				return err
			}
			reservationGone = true
		}
		return nil
	})

	return reservationGone, err
}

func (r *RequestGormRepository) ListRequestsForUserEndingBetween(
	ctx context.Context,
	email string,
	from time.Time,
	to time.Time,
) ([]models.Request, error) {

	var requests []models.Request
	err := r.db.WithContext(ctx).
		Joins("JOIN reservations ON reservations.id = requests.reservation_id").
		Joins("JOIN users ON users.id = reservations.user_id").
		Where("users.email = ?", email).
		Where("requests.end >= ? AND requests.end <= ?", from, to).
		Preload("Reservation").
		Preload("Reservation.Bib").
		Preload("Reservation.User").
		Order("requests.start ASC").
		Find(&requests).Error

	return requests, err
}
