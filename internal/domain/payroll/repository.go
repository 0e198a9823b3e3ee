package payroll

import "context"

// SnapshotRepository loads the collections payroll and dashboard views read.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (Snapshot, error)
	// LoadWorkerSnapshot loads one worker together with only their shifts, leaves and advances.
	LoadWorkerSnapshot(ctx context.Context, workerID string) (Snapshot, error)
}
