package leave

import "context"

type LeaveService interface {
	Request(ctx context.Context, workerID string, req CreateLeaveRequest) (LeaveResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
}
