package request

import (
	"context"

	domain "github.com/BruksfildServices01/alma-scheduler/internal/domain/request"
	"github.com/BruksfildServices01/alma-scheduler/internal/httperr"
	"github.com/BruksfildServices01/alma-scheduler/internal/models"
)

// lookupBibs returns the bibs in the order of mmsIDs, dropping duplicates.
func lookupBibs(
	ctx context.Context,
	repo domain.Repository,
	mmsIDs []string,
) ([]models.Bib, error) {

	found, err := repo.ListBibs(ctx, mmsIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Bib, len(found))
	for _, b := range found {
		byID[b.MmsID] = b
	}

	out := make([]models.Bib, 0, len(mmsIDs))
	seen := make(map[string]bool, len(mmsIDs))
	for _, id := range mmsIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		b, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("bib_not_found")
		}
		out = append(out, b)
	}

	return out, nil
}
