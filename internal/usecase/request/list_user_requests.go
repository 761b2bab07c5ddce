package request

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
	"github.com/BruksfildServices01/alma-scheduler/internal/validators"
)

// ListUserRequests returns a patron's requests that have not ended yet,
// up to horizon from now.
type ListUserRequests struct {
	repo        domain.Repository
	emailDomain string
	horizon     time.Duration
	now         func() time.Time
}

func NewListUserRequests(
	repo domain.Repository,
	emailDomain string,
	horizon time.Duration,
	now func() time.Time,
) *ListUserRequests {
	if now == nil {
		now = time.Now
	}
	return &ListUserRequests{
		repo:        repo,
		emailDomain: emailDomain,
		horizon:     horizon,
		now:         now,
	}
}

func (uc *ListUserRequests) Execute(
	ctx context.Context,
	username string,
) ([]models.Request, error) {

	email, err := validators.UsernameToEmail(username, uc.emailDomain)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_username")
	}

	now := uc.now()
	return uc.repo.ListRequestsForUserEndingBetween(ctx, email, now, now.Add(uc.horizon))
}
