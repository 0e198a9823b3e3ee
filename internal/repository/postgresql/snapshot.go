package postgresql

import (
	"context"
	"fmt"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

type snapshotRepositoryImpl struct {
	db *database.DB
}

func NewSnapshotRepository(db *database.DB) payroll.SnapshotRepository {
	return &snapshotRepositoryImpl{db: db}
}

// LoadSnapshot implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) LoadSnapshot(ctx context.Context) (payroll.Snapshot, error) {
	return r.load(ctx, "", "")
}

// LoadWorkerSnapshot implements payroll.SnapshotRepository.
func (r *snapshotRepositoryImpl) LoadWorkerSnapshot(ctx context.Context, workerID string) (payroll.Snapshot, error) {
	snap, err := r.load(ctx, ` WHERE id = $1`, ` WHERE worker_id = $1`, workerID)
	if err != nil {
		return payroll.Snapshot{}, err
	}
	if len(snap.Workers) == 0 {
		return payroll.Snapshot{}, payroll.ErrWorkerNotFound
	}
	return snap, nil
}

// load reads the four collections concurrently. Inside a transaction the
// queries share one connection, so they run one at a time.
func (r *snapshotRepositoryImpl) load(ctx context.Context, workerWhere, ownedWhere string, args ...interface{}) (payroll.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	g, gctx := errgroup.WithContext(ctx)
	if _, inTx := ctx.Value(txKey{}).(pgx.Tx); inTx {
		g.SetLimit(1)
	}

	var snap payroll.Snapshot
	g.Go(func() error {
		workers, err := queryAll(gctx, q, scanWorker, `SELECT `+workerColumns+` FROM workers`+workerWhere+` ORDER BY name`, args...)
		if err != nil {
			return fmt.Errorf("failed to load workers: %w", err)
		}
		snap.Workers = workers
		return nil
	})
	g.Go(func() error {
		shifts, err := queryAll(gctx, q, scanShift, `SELECT `+shiftColumns+` FROM shifts`+ownedWhere+` ORDER BY date`, args...)
		if err != nil {
			return fmt.Errorf("failed to load shifts: %w", err)
		}
		snap.Shifts = shifts
		return nil
	})
	g.Go(func() error {
		leaves, err := queryAll(gctx, q, scanLeave, `SELECT `+leaveColumns+` FROM leaves`+ownedWhere+` ORDER BY date`, args...)
		if err != nil {
			return fmt.Errorf("failed to load leaves: %w", err)
		}
		snap.Leaves = leaves
		return nil
	})
	g.Go(func() error {
		advances, err := queryAll(gctx, q, scanAdvance, `SELECT `+advanceColumns+` FROM advance_requests`+ownedWhere+` ORDER BY request_date`, args...)
		if err != nil {
			return fmt.Errorf("failed to load advance requests: %w", err)
		}
		snap.Advances = advances
		return nil
	})

	if err := g.Wait(); err != nil {
		return payroll.Snapshot{}, err
	}
	return snap, nil
}

func queryAll[T any](ctx context.Context, q database.Querier, scan func(pgx.Row) (T, error), query string, args ...interface{}) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
