package request

import (
	"context"
	"time"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
)

// AvailabilityAPI answers, for one bib, whether each interval is free.
// The result has one entry per interval, in the same order.
type AvailabilityAPI interface {
	IsAvailable(
		ctx context.Context,
		mmsID string,
		intervals []recurrence.Interval,
	) ([]bool, error)
}

type AvailabilityInput struct {
	MmsIDs         []string
	Start          time.Time
	End            time.Time
	EndRepeatingOn *time.Time
	RepeatOn       recurrence.Weekdays
}

// BlockItem is one bib inside a Block. IsAvailable is nil when Alma could
// not be asked.
type BlockItem struct {
	MmsID       string `json:"mms_id"`
	Name        string `json:"name"`
	IsAvailable *bool  `json:"is_available"`
}

// Block is one requested interval with the availability of every bib.
type Block struct {
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Items []BlockItem `json:"items"`
}
