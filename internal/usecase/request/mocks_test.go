package request

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListBibs(ctx context.Context, mmsIDs []string) ([]models.Bib, error) {
	args := m.Called(ctx, mmsIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bib), args.Error(1)
}

func (m *mockRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) CreateReservations(ctx context.Context, reservations []*models.Reservation) error {
	args := m.Called(ctx, reservations)
	return args.Error(0)
}

func (m *mockRepo) GetRequest(ctx context.Context, requestID uint) (*models.Request, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *mockRepo) DeleteRequest(ctx context.Context, req *models.Request) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListRequestsForUserEndingBetween(ctx context.Context, email string, from, to time.Time) ([]models.Request, error) {
	args := m.Called(ctx, email, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Request), args.Error(1)
}

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) IsAvailable(ctx context.Context, mmsID string, intervals []recurrence.Interval) ([]bool, error) {
	args := m.Called(ctx, mmsID, intervals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bool), args.Error(1)
}
