package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	// Upsert inserts or replaces the shift keyed by (WorkerID, Date).
	// Returns ErrShiftLocked when the existing row is approved.
	Upsert(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (Shift, error)
	List(ctx context.Context, filter ShiftFilter) ([]Shift, error)
	Approve(ctx context.Context, id string, approvedEarnings float64, approvedAt time.Time) error
}
