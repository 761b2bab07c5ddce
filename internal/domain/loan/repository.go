package loan

import (
	"context"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetItem(
		ctx context.Context,
		itemID string,
	) (*models.Item, error)

	GetUserByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	// -------- Loans --------
	GetLoan(
		ctx context.Context,
		loanID string,
	) (*models.Loan, error)

	HasOpenLoanForItem(
		ctx context.Context,
		itemID string,
	) (bool, error)

	CreateLoan(
		ctx context.Context,
		l *models.Loan,
	) error

	UpdateLoan(
		ctx context.Context,
		l *models.Loan,
	) error

	DeleteLoan(
		ctx context.Context,
		l *models.Loan,
	) error

	ListOpenLoans(
		ctx context.Context,
	) ([]models.Loan, error)
}
