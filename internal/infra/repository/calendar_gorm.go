package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type CalendarGormRepository struct {
	db *gorm.DB
}

func NewCalendarGormRepository(db *gorm.DB) *CalendarGormRepository {
	return &CalendarGormRepository{db: db}
}

var _ domain.Repository = (*CalendarGormRepository)(nil)

func (r *CalendarGormRepository) ListRequestsStartingBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Request, error) {

	var requests []models.Request
	err := r.db.WithContext(ctx).
		Preload("Reservation").
		Preload("Reservation.Bib").
		Preload("Reservation.User").
		Where("start >= ? AND start < ?", start, end).
		Order("id ASC").
		Find(&requests).Error

	return requests, err
}

func (r *CalendarGormRepository) ListOpenLoansSince(
	ctx context.Context,
	since time.Time,
) ([]models.Loan, error) {

	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Bib").
		Preload("User").
		Where("returned_on IS NULL AND loaned_on >= ?", since).
		Order("loaned_on ASC").
		Find(&loans).Error

	return loans, err
}
