package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const shiftColumns = `
	id, worker_id, date, start_time, end_time, break_minutes, notes, status, is_approved,
	total_hours, estimated_earnings, approved_earnings, approved_at, created_at, updated_at`

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID,
		&s.WorkerID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.BreakMinutes,
		&s.Notes,
		&s.Status,
		&s.IsApproved,
		&s.TotalHours,
		&s.EstimatedEarnings,
		&s.ApprovedEarnings,
		&s.ApprovedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Upsert implements shift.ShiftRepository. On a (worker_id, date) conflict the
// existing row keeps its id and is overwritten unless it is approved.
func (r *shiftRepositoryImpl) Upsert(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, worker_id, date, start_time, end_time, break_minutes, notes, status, is_approved,
			total_hours, estimated_earnings, approved_earnings, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10, 0, $11, $12)
		ON CONFLICT (worker_id, date) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_minutes = EXCLUDED.break_minutes,
			notes = EXCLUDED.notes,
			status = EXCLUDED.status,
			total_hours = EXCLUDED.total_hours,
			estimated_earnings = EXCLUDED.estimated_earnings,
			updated_at = EXCLUDED.updated_at
		WHERE shifts.is_approved = FALSE
		RETURNING ` + shiftColumns

	saved, err := scanShift(q.QueryRow(ctx, query,
		s.ID,
		s.WorkerID,
		s.Date,
		s.StartTime,
		s.EndTime,
		s.BreakMinutes,
		s.Notes,
		s.Status,
		s.TotalHours,
		s.EstimatedEarnings,
		s.CreatedAt,
		s.UpdatedAt,
	))
	if err != nil {
		// The conflict row exists but the WHERE clause kept it: it is approved.
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftLocked
		}
		return shift.Shift{}, fmt.Errorf("failed to upsert shift: %w", err)
	}
	return saved, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift with id %s: %w", id, err)
	}
	return s, nil
}

// GetByWorkerAndDate implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE worker_id = $1 AND date = $2`, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE %s ORDER BY date DESC, created_at DESC`, shiftColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Approve implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Approve(ctx context.Context, id string, approvedEarnings float64, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE shifts
		SET is_approved = TRUE, status = $2, approved_earnings = $3, approved_at = $4, updated_at = NOW()
		WHERE id = $1 AND is_approved = FALSE
	`, id, shift.StatusCompleted, approvedEarnings, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to approve shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return shift.ErrShiftAlreadyApproved
	}
	return nil
}
