package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if err := s.ensureCodeAvailable(ctx, req.WorkerCode, ""); err != nil {
		return worker.WorkerResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to generate worker id: %w", err)
	}

	iqamaExpiry, err := parseOptionalDate(req.IqamaExpiry)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	passportExpiry, err := parseOptionalDate(req.PassportExpiry)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	code := req.WorkerCode
	now := time.Now()
	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ID:             id.String(),
		Name:           req.Name,
		WorkerCode:     &code,
		Trade:          req.Trade,
		Role:           worker.Role(req.Role),
		MonthlySalary:  req.MonthlySalary,
		Phone:          req.Phone,
		PhotoURL:       req.PhotoURL,
		PasswordHash:   string(hashedPassword),
		IsActive:       true,
		IqamaExpiry:    iqamaExpiry,
		PassportExpiry: passportExpiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker.NewWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) GetByID(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	result := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		result = append(result, worker.NewWorkerResponse(w))
	}
	return result, nil
}

func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.ID); err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.WorkerCode != nil {
		if err := s.ensureCodeAvailable(ctx, *req.WorkerCode, req.ID); err != nil {
			return worker.WorkerResponse{}, err
		}
	}

	if err := s.workerRepo.Update(ctx, req.ID, req); err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to update worker: %w", err)
	}

	return s.GetByID(ctx, req.ID)
}

// Deactivate is the normal way to remove a worker; their history stays in place.
func (s *WorkerServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.workerRepo.SetActive(ctx, id, false)
}

// Delete hard-deletes the worker row only. Shifts, leaves and advances keep
// their worker id and are not cascaded.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id string) error {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if w.IsAdmin() {
		admins, err := s.workerRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return worker.ErrLastAdmin
		}
	}

	return s.workerRepo.Delete(ctx, id)
}

func (s *WorkerServiceImpl) EnsureAdmin(ctx context.Context, code, password string) error {
	admins, err := s.workerRepo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins > 0 {
		return nil
	}

	created, err := s.Create(ctx, worker.CreateWorkerRequest{
		Name:       "Administrator",
		WorkerCode: code,
		Role:       string(worker.RoleAdmin),
		Password:   password,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	slog.Info("Seeded admin account", "worker_id", created.ID, "worker_code", code)
	return nil
}

func (s *WorkerServiceImpl) ensureCodeAvailable(ctx context.Context, code, selfID string) error {
	existing, err := s.workerRepo.GetByCode(ctx, code)
	if err == nil {
		if existing.ID != selfID {
			return worker.ErrWorkerCodeExists
		}
		return nil
	}
	if errors.Is(err, worker.ErrWorkerNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check worker code: %w", err)
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := utils.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &d, nil
}
