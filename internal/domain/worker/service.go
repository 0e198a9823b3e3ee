package worker

import "context"

type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	GetByID(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context, filter WorkerFilter) ([]WorkerResponse, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// EnsureAdmin creates the bootstrap admin when no admin account exists.
	EnsureAdmin(ctx context.Context, code, password string) error
}
