package loan

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *mockRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Loan), args.Error(1)
}

func (m *mockRepo) HasOpenLoanForItem(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) CreateLoan(ctx context.Context, l *models.Loan) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockRepo) UpdateLoan(ctx context.Context, l *models.Loan) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockRepo) DeleteLoan(ctx context.Context, l *models.Loan) error {
	return m.Called(ctx, l).Error(0)
}

func (m *mockRepo) ListOpenLoans(ctx context.Context) ([]models.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Loan), args.Error(1)
}

type mockAlma struct {
	mock.Mock
}

func (m *mockAlma) CreateLoan(ctx context.Context, username, barcode string) (string, error) {
	args := m.Called(ctx, username, barcode)
	return args.String(0), args.Error(1)
}

func (m *mockAlma) ReturnLoan(ctx context.Context, mmsID, itemID string) error {
	return m.Called(ctx, mmsID, itemID).Error(0)
}
