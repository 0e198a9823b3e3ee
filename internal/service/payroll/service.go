package payroll

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
)

type PayrollServiceImpl struct {
	snapshotRepo payroll.SnapshotRepository
	workerRepo   worker.WorkerRepository
	settings     payroll.Settings
	loc          *time.Location
}

func NewPayrollService(
	snapshotRepo payroll.SnapshotRepository,
	workerRepo worker.WorkerRepository,
	settings payroll.Settings,
	loc *time.Location,
) payroll.PayrollService {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollServiceImpl{
		snapshotRepo: snapshotRepo,
		workerRepo:   workerRepo,
		settings:     settings,
		loc:          loc,
	}
}

func (s *PayrollServiceImpl) Settings() payroll.Settings {
	return s.settings
}

// PreviewBreakdown computes what a shift would earn for the worker without storing it.
func (s *PayrollServiceImpl) PreviewBreakdown(ctx context.Context, workerID string, req payroll.BreakdownPreviewRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}
	if !w.IsPayable() {
		return payroll.BreakdownResponse{}, payroll.ErrWorkerHasNoSalary
	}

	date := utils.Today(s.loc)
	if req.Date != "" {
		date, err = utils.ParseDate(req.Date)
		if err != nil {
			return payroll.BreakdownResponse{}, fmt.Errorf("parse date: %w", err)
		}
	}

	start, err := utils.AtClock(date, req.StartTime, s.loc)
	if err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("parse start time: %w", err)
	}
	end, err := utils.AtClock(date, req.EndTime, s.loc)
	if err != nil {
		return payroll.BreakdownResponse{}, fmt.Errorf("parse end time: %w", err)
	}

	rates := DeriveRates(s.settings, w.MonthlySalary)
	return payroll.NewBreakdownResponse(rates, CalculateBreakdown(s.settings, rates, start, end, req.BreakMinutes)), nil
}

func (s *PayrollServiceImpl) GetStatement(ctx context.Context, workerID string) (payroll.StatementResponse, error) {
	snap, err := s.snapshotRepo.LoadWorkerSnapshot(ctx, workerID)
	if err != nil {
		return payroll.StatementResponse{}, err
	}
	if len(snap.Workers) == 0 {
		return payroll.StatementResponse{}, payroll.ErrWorkerNotFound
	}

	w := snap.Workers[0]
	if !w.IsPayable() {
		return payroll.StatementResponse{}, payroll.ErrWorkerHasNoSalary
	}

	stmt := BuildStatement(s.settings, w, snap.Shifts, snap.Leaves, snap.Advances)
	if stmt.IsNegative() {
		slog.Warn("Negative payroll balance", "worker_id", w.ID, "final_pay", stmt.FinalPay)
	}
	return payroll.NewStatementResponse(stmt), nil
}

func (s *PayrollServiceImpl) ListStatements(ctx context.Context, filter payroll.StatementFilter) (payroll.StatementListResponse, error) {
	statements, skipped, err := s.buildStatements(ctx, filter)
	if err != nil {
		return payroll.StatementListResponse{}, err
	}

	resp := payroll.StatementListResponse{
		Statements: make([]payroll.StatementResponse, 0, len(statements)),
		Skipped:    skipped,
		Totals:     newTotals(statements),
	}
	for _, stmt := range statements {
		resp.Statements = append(resp.Statements, payroll.NewStatementResponse(stmt))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) ExportSheet(ctx context.Context, w io.Writer, filter payroll.StatementFilter) error {
	statements, _, err := s.buildStatements(ctx, filter)
	if err != nil {
		return err
	}
	return WriteSalarySheet(w, statements, utils.Today(s.loc))
}

// buildStatements runs the aggregator for every payroll worker in the snapshot.
// Admin accounts are left out; workers without a salary are reported as skipped.
func (s *PayrollServiceImpl) buildStatements(ctx context.Context, filter payroll.StatementFilter) ([]payroll.Statement, []payroll.SkippedWorker, error) {
	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load payroll snapshot: %w", err)
	}

	wanted := make(map[string]bool, len(filter.WorkerIDs))
	for _, id := range filter.WorkerIDs {
		wanted[id] = true
	}

	statements := make([]payroll.Statement, 0, len(snap.Workers))
	skipped := []payroll.SkippedWorker{}

	for _, w := range snap.Workers {
		if w.IsAdmin() {
			continue
		}
		if len(wanted) > 0 && !wanted[w.ID] {
			continue
		}
		if filter.ActiveOnly && !w.IsActive {
			continue
		}
		if !w.IsPayable() {
			slog.Warn("Skipping worker without salary", "worker_id", w.ID)
			skipped = append(skipped, payroll.SkippedWorker{
				WorkerID:   w.ID,
				WorkerName: w.Name,
				Reason:     payroll.ErrWorkerHasNoSalary.Error(),
			})
			continue
		}
		statements = append(statements, BuildStatement(s.settings, w, snap.Shifts, snap.Leaves, snap.Advances))
	}

	return statements, skipped, nil
}

func newTotals(statements []payroll.Statement) payroll.StatementTotals {
	var regular, overtime, leave, advance, final float64
	totals := payroll.StatementTotals{WorkerCount: len(statements)}

	for _, stmt := range statements {
		regular += stmt.RegularEarnings
		overtime += stmt.OvertimeEarnings
		leave += stmt.LeaveDeduction
		advance += stmt.AdvanceDeduction
		final += stmt.FinalPay
		if stmt.IsNegative() {
			totals.NegativeCount++
		}
	}

	totals.TotalRegularEarnings = utils.Money(regular)
	totals.TotalOvertimeEarnings = utils.Money(overtime)
	totals.TotalLeaveDeduction = utils.Money(leave)
	totals.TotalAdvanceDeduction = utils.Money(advance)
	totals.TotalFinalPay = utils.Money(final)
	return totals
}
