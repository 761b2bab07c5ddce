package calendar

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
)

// View is one page of the calendar.
type View struct {
	Calendar     *domain.Grid  `json:"calendar"`
	Items        []domain.Item `json:"items"`
	Hours        []string      `json:"hours"`
	Today        time.Time     `json:"today"`
	Page         int           `json:"page"`
	PreviousPage int           `json:"previous_page"`
	NextPage     int           `json:"next_page"`
}

type BuildCalendar struct {
	repo       domain.Repository
	windowDays int
	now        func() time.Time
}

// NewBuildCalendar builds pages of windowDays days. now must return the
// current time in the calendar's location.
func NewBuildCalendar(
	repo domain.Repository,
	windowDays int,
	now func() time.Time,
) *BuildCalendar {
	if windowDays <= 0 {
		windowDays = domain.DefaultWindowDays
	}
	if now == nil {
		now = time.Now
	}
	return &BuildCalendar{
		repo:       repo,
		windowDays: windowDays,
		now:        now,
	}
}

func (uc *BuildCalendar) Execute(
	ctx context.Context,
	page int,
) (*View, error) {

	now := uc.now()
	loc := now.Location()

	start := domain.WindowStart(now, page, uc.windowDays)
	end := start.AddDate(0, 0, uc.windowDays)

	// --------------------------------------------------
	// Records
	// --------------------------------------------------
	requests, err := uc.repo.ListRequestsStartingBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	loans, err := uc.repo.ListOpenLoansSince(ctx, start)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(requests)+len(loans))
	for _, r := range requests {
		items = append(items, domain.FromRequest(r, loc))
	}
	for _, l := range loans {
		items = append(items, domain.FromLoan(l, now, loc))
	}

	// --------------------------------------------------
	// Split + bucket
	// --------------------------------------------------
	grid, pieces := domain.Compose(start, uc.windowDays, items)

	metrics.IncCalendarBuild()

	y, m, d := now.Date()
	return &View{
		Calendar:     grid,
		Items:        pieces,
		Hours:        domain.HourLabels(),
		Today:        time.Date(y, m, d, 0, 0, 0, 0, loc),
		Page:         page,
		PreviousPage: page - 1,
		NextPage:     page + 1,
	}, nil
}
