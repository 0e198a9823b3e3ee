package advance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
	loc         *time.Location
	now         func() time.Time
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, workerRepo worker.WorkerRepository, loc *time.Location) advance.AdvanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *AdvanceServiceImpl) Request(ctx context.Context, workerID string, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if !w.IsActive {
		return advance.AdvanceResponse{}, worker.ErrWorkerInactive
	}

	id, err := uuid.NewV7()
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to generate advance id: %w", err)
	}

	now := s.now()
	created, err := s.advanceRepo.Create(ctx, advance.AdvanceRequest{
		ID:          id.String(),
		WorkerID:    w.ID,
		WorkerName:  w.Name,
		Amount:      req.Amount,
		Reason:      req.Reason,
		RequestDate: utils.DateOf(now, s.loc),
		Status:      advance.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return advance.AdvanceResponse{}, fmt.Errorf("failed to create advance request: %w", err)
	}

	return advance.NewAdvanceResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.AdvanceResponse, error) {
	return s.List(ctx, advance.AdvanceFilter{WorkerID: &workerID})
}

func (s *AdvanceServiceImpl) List(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, error) {
	advances, err := s.advanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance requests: %w", err)
	}
	return advance.NewAdvanceResponses(advances), nil
}

// Decide applies an admin decision. Scheduling defers the decision to the
// payment date; only approval makes the amount count against payroll.
func (s *AdvanceServiceImpl) Decide(ctx context.Context, req advance.DecideAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	existing, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	target := req.TargetStatus()
	if !advance.CanTransition(existing.Status, target) {
		return advance.AdvanceResponse{}, fmt.Errorf("%w: %s to %s", advance.ErrInvalidAdvanceTransition, existing.Status, target)
	}

	var paymentDate *time.Time
	if target == advance.StatusScheduled {
		d, err := utils.ParseDate(*req.PaymentDate)
		if err != nil {
			return advance.AdvanceResponse{}, fmt.Errorf("invalid payment date: %w", err)
		}
		paymentDate = &d
	}

	if err := s.advanceRepo.UpdateStatus(ctx, req.ID, existing.Status, target, paymentDate, s.now()); err != nil {
		return advance.AdvanceResponse{}, err
	}

	slog.Info("Advance request decided", "advance_id", req.ID, "from", existing.Status, "to", target)

	updated, err := s.advanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	return advance.NewAdvanceResponse(updated), nil
}

func (s *AdvanceServiceImpl) ListDue(ctx context.Context, today time.Time) ([]advance.AdvanceResponse, error) {
	status := string(advance.StatusScheduled)
	scheduled, err := s.advanceRepo.List(ctx, advance.AdvanceFilter{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled advances: %w", err)
	}

	due := make([]advance.AdvanceRequest, 0, len(scheduled))
	for _, a := range scheduled {
		if a.IsDue(today) {
			due = append(due, a)
		}
	}
	return advance.NewAdvanceResponses(due), nil
}
