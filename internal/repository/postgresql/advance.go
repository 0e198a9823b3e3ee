package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const advanceColumns = `
	id, worker_id, worker_name, amount, reason, request_date, status, payment_date,
	decided_at, created_at, updated_at`

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

func scanAdvance(row pgx.Row) (advance.AdvanceRequest, error) {
	var a advance.AdvanceRequest
	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.WorkerName,
		&a.Amount,
		&a.Reason,
		&a.RequestDate,
		&a.Status,
		&a.PaymentDate,
		&a.DecidedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_requests (id, worker_id, worker_name, amount, reason, request_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		a.ID, a.WorkerID, a.WorkerName, a.Amount, a.Reason, a.RequestDate, a.Status, a.CreatedAt, a.UpdatedAt,
	))
	if err != nil {
		return advance.AdvanceRequest{}, fmt.Errorf("failed to create advance request: %w", err)
	}
	return created, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx, `SELECT `+advanceColumns+` FROM advance_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvanceRequest{}, fmt.Errorf("failed to get advance request with id %s: %w", id, err)
	}
	return a, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) List(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceRequest, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM advance_requests WHERE %s ORDER BY request_date DESC, created_at DESC`, advanceColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	defer rows.Close()

	var advances []advance.AdvanceRequest
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance request: %w", err)
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

// UpdateStatus implements advance.AdvanceRepository. A nil paymentDate keeps the stored one.
func (r *advanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to advance.Status, paymentDate *time.Time, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE advance_requests
		SET status = $3, payment_date = COALESCE($4, payment_date), decided_at = $5, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`, id, from, to, paymentDate, decidedAt)
	if err != nil {
		return fmt.Errorf("failed to update advance request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return advance.ErrInvalidAdvanceTransition
	}
	return nil
}
