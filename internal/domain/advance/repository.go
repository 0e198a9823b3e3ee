package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	Create(ctx context.Context, a AdvanceRequest) (AdvanceRequest, error)
	GetByID(ctx context.Context, id string) (AdvanceRequest, error)
	List(ctx context.Context, filter AdvanceFilter) ([]AdvanceRequest, error)
	// UpdateStatus applies a decision only if the row is still in status from.
	UpdateStatus(ctx context.Context, id string, from, to Status, paymentDate *time.Time, decidedAt time.Time) error
}
