package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leaveRepo  leave.LeaveRepository
	workerRepo worker.WorkerRepository
	now        func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository, workerRepo worker.WorkerRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:  leaveRepo,
		workerRepo: workerRepo,
		now:        time.Now,
	}
}

func (s *LeaveServiceImpl) Request(ctx context.Context, workerID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !w.IsActive {
		return leave.LeaveResponse{}, worker.ErrWorkerInactive
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("invalid date: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to generate leave id: %w", err)
	}

	now := s.now()
	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		ID:        id.String(),
		WorkerID:  w.ID,
		Date:      date,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveResponse(created), nil
}

func (s *LeaveServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]leave.LeaveResponse, error) {
	return s.List(ctx, leave.LeaveFilter{WorkerID: &workerID})
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewLeaveResponses(leaves), nil
}

// Decide accepts or rejects a pending leave. A rejection costs the worker one day's pay.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !existing.IsPending() {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyDecided
	}

	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.Status(req.Status), s.now()); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(updated), nil
}
