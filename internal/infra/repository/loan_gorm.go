package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/loan"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type LoanGormRepository struct {
	db *gorm.DB
}

func NewLoanGormRepository(db *gorm.DB) *LoanGormRepository {
	return &LoanGormRepository{db: db}
}

var _ domain.Repository = (*LoanGormRepository)(nil)

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *LoanGormRepository) GetItem(
	ctx context.Context,
	itemID string,
) (*models.Item, error) {

	var item models.Item
	if err := r.db.WithContext(ctx).
		Preload("Bib").
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *LoanGormRepository) GetUserByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {
	return getUserByUsername(ctx, r.db, username)
}

// --------------------------------------------------
// Loans
// --------------------------------------------------

func (r *LoanGormRepository) GetLoan(
	ctx context.Context,
	loanID string,
) (*models.Loan, error) {

	var l models.Loan
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Bib").
		Preload("User").
		Where("loan_id = ?", loanID).
		First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanGormRepository) HasOpenLoanForItem(
	ctx context.Context,
	itemID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("item_id = ? AND returned_on IS NULL", itemID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateLoan inserts the loan row only. A second open loan for the same item
// hits the partial unique index and is reported as item_already_loaned.
func (r *LoanGormRepository) CreateLoan(
	ctx context.Context,
	l *models.Loan,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(l).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("item_already_loaned")
	}
	return err
}

func (r *LoanGormRepository) UpdateLoan(
	ctx context.Context,
	l *models.Loan,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(l).Error
}

func (r *LoanGormRepository) DeleteLoan(
	ctx context.Context,
	l *models.Loan,
) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", l.LoanID).
		Delete(&models.Loan{}).Error
}

func (r *LoanGormRepository) ListOpenLoans(
	ctx context.Context,
) ([]models.Loan, error) {

	var loans []models.Loan
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Item.Bib").
		Preload("User").
		Where("returned_on IS NULL").
		Order("loaned_on ASC").
		Find(&loans).Error

	return loans, err
}
