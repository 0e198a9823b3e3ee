package shift

import "context"

type ShiftService interface {
	LogShift(ctx context.Context, workerID string, req LogShiftRequest) (ShiftResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]ShiftResponse, error)
	List(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)
	Approve(ctx context.Context, id string) (ShiftResponse, error)
	Import(ctx context.Context, req ImportShiftsRequest) (ImportShiftsResponse, error)
}
