package worker

import "context"

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByCode(ctx context.Context, code string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, error)
	Create(ctx context.Context, newWorker Worker) (Worker, error)
	Update(ctx context.Context, id string, req UpdateWorkerRequest) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int, error)
}
