package request

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
)

type CheckAvailability struct {
	repo    domain.Repository
	checker *AvailabilityChecker
	logger  *zerolog.Logger
}

func NewCheckAvailability(
	repo domain.Repository,
	checker *AvailabilityChecker,
	logger *zerolog.Logger,
) *CheckAvailability {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &CheckAvailability{
		repo:    repo,
		checker: checker,
		logger:  logger,
	}
}

// Execute expands the requested recurrence and asks Alma about every bib.
// A bib Alma could not answer for gets a nil IsAvailable on every block.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Block, error) {

	if len(in.MmsIDs) == 0 {
		return nil, httperr.ErrBusiness("mms_ids_required")
	}

	intervals, err := expand(in)
	if err != nil {
		return nil, err
	}

	bibs, err := lookupBibs(ctx, uc.repo, in.MmsIDs)
	if err != nil {
		return nil, err
	}

	blocks := make([]domain.Block, len(intervals))
	for i, iv := range intervals {
		blocks[i] = domain.Block{
			Start: iv.Start,
			End:   iv.End,
			Items: make([]domain.BlockItem, 0, len(bibs)),
		}
	}

	for _, bib := range bibs {
		results, err := uc.checker.Check(ctx, bib.MmsID, intervals)
		if err != nil {
			uc.logger.Warn().Err(err).Str("mms_id", bib.MmsID).Msg("availability unknown")
			metrics.IncAvailabilityCheck("unknown")
		}

		for i := range blocks {
			item := domain.BlockItem{MmsID: bib.MmsID, Name: bib.String()}
			if err == nil {
				avail := results[i]
				item.IsAvailable = &avail
				if avail {
					metrics.IncAvailabilityCheck("available")
				} else {
					metrics.IncAvailabilityCheck("unavailable")
				}
			}
			blocks[i].Items = append(blocks[i].Items, item)
		}
	}

	return blocks, nil
}

func expand(in domain.AvailabilityInput) ([]recurrence.Interval, error) {
	intervals, err := recurrence.Generate(in.Start, in.End, in.EndRepeatingOn, in.RepeatOn)
	if errors.Is(err, recurrence.ErrInvalidRange) {
		return nil, httperr.ErrBusiness("invalid_range")
	}
	return intervals, err
}
