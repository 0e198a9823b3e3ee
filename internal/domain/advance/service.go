package advance

import (
	"context"
	"time"
)

type AdvanceService interface {
	Request(ctx context.Context, workerID string, req CreateAdvanceRequest) (AdvanceResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]AdvanceResponse, error)
	List(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)
	Decide(ctx context.Context, req DecideAdvanceRequest) (AdvanceResponse, error)
	// ListDue returns scheduled advances whose payment date is on or before today.
	ListDue(ctx context.Context, today time.Time) ([]AdvanceResponse, error)
}
