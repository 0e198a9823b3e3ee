package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	payrollservice "github.com/fastep-work/fastep-backend-go/internal/service/payroll"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	txManager  database.TxManager
	shiftRepo  shift.ShiftRepository
	workerRepo worker.WorkerRepository
	settings   payroll.Settings
	loc        *time.Location
	now        func() time.Time
}

func NewShiftService(
	txManager database.TxManager,
	shiftRepo shift.ShiftRepository,
	workerRepo worker.WorkerRepository,
	settings payroll.Settings,
	loc *time.Location,
) shift.ShiftService {
	if loc == nil {
		loc = time.UTC
	}
	return &ShiftServiceImpl{
		txManager:  txManager,
		shiftRepo:  shiftRepo,
		workerRepo: workerRepo,
		settings:   settings,
		loc:        loc,
		now:        time.Now,
	}
}

type shiftEntry struct {
	date         string
	startTime    string
	endTime      string
	breakMinutes int
	notes        *string
}

// LogShift records the worker's shift for a date, replacing any unapproved
// shift already logged for that date.
func (s *ShiftServiceImpl) LogShift(ctx context.Context, workerID string, req shift.LogShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !w.IsActive {
		return shift.ShiftResponse{}, worker.ErrWorkerInactive
	}

	saved, err := s.upsert(ctx, w, shiftEntry{
		date:         req.Date,
		startTime:    req.StartTime,
		endTime:      req.EndTime,
		breakMinutes: req.BreakMinutes,
		notes:        req.Notes,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.NewShiftResponse(saved), nil
}

func (s *ShiftServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]shift.ShiftResponse, error) {
	return s.List(ctx, shift.ShiftFilter{WorkerID: &workerID})
}

func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shift.NewShiftResponses(shifts), nil
}

// Approve locks the shift and records its earnings at the worker's current rates.
func (s *ShiftServiceImpl) Approve(ctx context.Context, id string) (shift.ShiftResponse, error) {
	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing.IsApproved {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyApproved
	}

	w, err := s.workerRepo.GetByID(ctx, existing.WorkerID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to load worker for shift: %w", err)
	}

	rates := payrollservice.DeriveRates(s.settings, w.MonthlySalary)
	b := payrollservice.CalculateBreakdown(s.settings, rates, existing.StartTime, existing.EndTime, existing.BreakMinutes)

	if err := s.shiftRepo.Approve(ctx, id, b.TotalEarnings(), s.now()); err != nil {
		return shift.ShiftResponse{}, err
	}

	approved, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.NewShiftResponse(approved), nil
}

// Import applies a batch of admin-entered shifts atomically. Entries for
// unknown workers, future dates or approved shifts are skipped and reported.
func (s *ShiftServiceImpl) Import(ctx context.Context, req shift.ImportShiftsRequest) (shift.ImportShiftsResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ImportShiftsResponse{}, err
	}

	resp := shift.ImportShiftsResponse{Skipped: []shift.ImportSkip{}}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		workers := map[string]worker.Worker{}

		for _, e := range req.Entries {
			skip := func(reason error) {
				resp.Skipped = append(resp.Skipped, shift.ImportSkip{WorkerID: e.WorkerID, Date: e.Date, Reason: reason.Error()})
			}

			w, ok := workers[e.WorkerID]
			if !ok {
				found, err := s.workerRepo.GetByID(txCtx, e.WorkerID)
				if errors.Is(err, worker.ErrWorkerNotFound) {
					skip(err)
					continue
				}
				if err != nil {
					return err
				}
				workers[e.WorkerID] = found
				w = found
			}

			_, err := s.upsert(txCtx, w, shiftEntry{
				date:         e.Date,
				startTime:    e.StartTime,
				endTime:      e.EndTime,
				breakMinutes: e.BreakMinutes,
				notes:        e.Notes,
			})
			switch {
			case errors.Is(err, shift.ErrShiftLocked), errors.Is(err, shift.ErrFutureShiftDate):
				skip(err)
			case err != nil:
				return err
			default:
				resp.Imported++
			}
		}
		return nil
	})
	if err != nil {
		return shift.ImportShiftsResponse{}, fmt.Errorf("failed to import shifts: %w", err)
	}

	slog.Info("Imported shifts", "imported", resp.Imported, "skipped", len(resp.Skipped))
	return resp, nil
}

func (s *ShiftServiceImpl) upsert(ctx context.Context, w worker.Worker, e shiftEntry) (shift.Shift, error) {
	date, err := utils.ParseDate(e.date)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("invalid date: %w", err)
	}
	if date.After(utils.DateOf(s.now(), s.loc)) {
		return shift.Shift{}, shift.ErrFutureShiftDate
	}

	start, err := utils.AtClock(date, e.startTime, s.loc)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := utils.AtClock(date, e.endTime, s.loc)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("invalid end time: %w", err)
	}

	rates := payrollservice.DeriveRates(s.settings, w.MonthlySalary)
	b := payrollservice.CalculateBreakdown(s.settings, rates, start, end, e.breakMinutes)

	id, err := uuid.NewV7()
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to generate shift id: %w", err)
	}

	now := s.now()
	return s.shiftRepo.Upsert(ctx, shift.Shift{
		ID:                id.String(),
		WorkerID:          w.ID,
		Date:              date,
		StartTime:         start,
		EndTime:           end,
		BreakMinutes:      e.breakMinutes,
		Notes:             e.notes,
		Status:            shift.StatusPending,
		TotalHours:        b.TotalHours,
		EstimatedEarnings: b.TotalEarnings(),
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}
