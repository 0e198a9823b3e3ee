package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const workerColumns = `
	id, name, worker_code, trade, role, monthly_salary, phone, photo_url, password_hash,
	is_active, iqama_expiry, passport_expiry, created_at, updated_at`

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.WorkerCode,
		&w.Trade,
		&w.Role,
		&w.MonthlySalary,
		&w.Phone,
		&w.PhotoURL,
		&w.PasswordHash,
		&w.IsActive,
		&w.IqamaExpiry,
		&w.PassportExpiry,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWorker(q.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker with id %s: %w", id, err)
	}
	return w, nil
}

// GetByCode implements worker.WorkerRepository. Codes match case-insensitively.
func (r *workerRepositoryImpl) GetByCode(ctx context.Context, code string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w, err := scanWorker(q.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE LOWER(worker_code) = LOWER($1)`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker with code %s: %w", code, err)
	}
	return w, nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR worker_code ILIKE $%d OR trade ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active")
	}

	query := fmt.Sprintf(`SELECT %s FROM workers WHERE %s ORDER BY name ASC, id ASC`, workerColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, newWorker worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			id, name, worker_code, trade, role, monthly_salary, phone, photo_url, password_hash,
			is_active, iqama_expiry, passport_expiry, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + workerColumns

	created, err := scanWorker(q.QueryRow(ctx, query,
		newWorker.ID,
		newWorker.Name,
		newWorker.WorkerCode,
		newWorker.Trade,
		newWorker.Role,
		newWorker.MonthlySalary,
		newWorker.Phone,
		newWorker.PhotoURL,
		newWorker.PasswordHash,
		newWorker.IsActive,
		newWorker.IqamaExpiry,
		newWorker.PassportExpiry,
		newWorker.CreatedAt,
		newWorker.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return worker.Worker{}, worker.ErrWorkerCodeExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return created, nil
}

// Update implements worker.WorkerRepository. Only fields set on req are written;
// an empty string clears an optional column.
func (r *workerRepositoryImpl) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.WorkerCode != nil {
		updates["worker_code"] = *req.WorkerCode
	}
	if req.Trade != nil {
		updates["trade"] = nullIfEmpty(*req.Trade)
	}
	if req.MonthlySalary != nil {
		updates["monthly_salary"] = *req.MonthlySalary
	}
	if req.Phone != nil {
		updates["phone"] = nullIfEmpty(*req.Phone)
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = nullIfEmpty(*req.PhotoURL)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IqamaExpiry != nil {
		updates["iqama_expiry"] = dateOrNull(*req.IqamaExpiry)
	}
	if req.PassportExpiry != nil {
		updates["passport_expiry"] = dateOrNull(*req.PassportExpiry)
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE workers SET %s WHERE id = $%d RETURNING id", strings.Join(setClauses, ", "), i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.ErrWorkerNotFound
		}
		if isUniqueViolation(err) {
			return worker.ErrWorkerCodeExists
		}
		return fmt.Errorf("failed to update worker with id %s: %w", id, err)
	}
	return nil
}

// SetActive implements worker.WorkerRepository.
func (r *workerRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE workers SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set worker active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

// Delete implements worker.WorkerRepository. History rows are left in place.
func (r *workerRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

// CountAdmins implements worker.WorkerRepository.
func (r *workerRepositoryImpl) CountAdmins(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM workers WHERE role = 'admin'`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullIfEmpty(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func dateOrNull(s string) interface{} {
	if s == "" {
		return nil
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return nil
	}
	return d
}
