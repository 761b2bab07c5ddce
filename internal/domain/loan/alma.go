package loan

import (
	"context"
	"errors"
)

// ErrUpstream wraps any failure talking to Alma during a loan mutation.
var ErrUpstream = errors.New("alma_unavailable")

// AlmaAPI is the circulation side of Alma.
type AlmaAPI interface {
	CreateLoan(ctx context.Context, username, barcode string) (string, error)
	ReturnLoan(ctx context.Context, mmsID, itemID string) error
}
