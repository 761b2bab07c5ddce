package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
)

// ErrUpstreamUnavailable means availability could not be determined. It is
// not the same as "unavailable".
var ErrUpstreamUnavailable = errors.New("upstream_unavailable")

type AvailabilityChecker struct {
	api domain.AvailabilityAPI
}

func NewAvailabilityChecker(api domain.AvailabilityAPI) *AvailabilityChecker {
	return &AvailabilityChecker{api: api}
}

// Check returns one result per interval, in input order.
func (c *AvailabilityChecker) Check(
	ctx context.Context,
	mmsID string,
	intervals []recurrence.Interval,
) ([]bool, error) {

	if len(intervals) == 0 {
		return []bool{}, nil
	}

	res, err := c.api.IsAvailable(ctx, mmsID, intervals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(res) != len(intervals) {
		return nil, fmt.Errorf(
			"%w: got %d results for %d intervals",
			ErrUpstreamUnavailable, len(res), len(intervals),
		)
	}

	return res, nil
}
