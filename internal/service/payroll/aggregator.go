package payroll

import (
	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
)

// BuildStatement aggregates one worker's approved shifts, rejected leaves and
// approved advances into a payroll statement. The collections may hold rows of
// other workers; they are filtered by worker id. FinalPay may be negative.
func BuildStatement(
	settings payroll.Settings,
	w worker.Worker,
	shifts []shift.Shift,
	leaves []leave.Leave,
	advances []advance.AdvanceRequest,
) payroll.Statement {
	rates := DeriveRates(settings, w.MonthlySalary)

	stmt := payroll.Statement{
		WorkerID:   w.ID,
		WorkerName: w.Name,
		WorkerCode: w.WorkerCode,
		Rates:      rates,
	}

	for _, s := range shifts {
		if s.WorkerID != w.ID {
			continue
		}

		b := CalculateBreakdown(settings, rates, s.StartTime, s.EndTime, s.BreakMinutes)
		stmt.TotalWorkedHours += b.TotalHours

		if !s.IsApproved {
			stmt.PendingShiftCount++
			stmt.PendingEarnings += b.TotalEarnings()
			continue
		}

		stmt.ApprovedShiftCount++
		stmt.RegularHours += b.RegularHours
		stmt.OvertimeHours += b.OvertimeHours
		stmt.RegularEarnings += b.RegularEarnings
		stmt.OvertimeEarnings += b.OvertimeEarnings
	}

	for _, l := range leaves {
		if l.WorkerID == w.ID && l.IsRejected() {
			stmt.RejectedLeaveCount++
		}
	}
	if stmt.RejectedLeaveCount > 0 {
		stmt.LeaveDeduction = float64(stmt.RejectedLeaveCount) * rates.Daily
	}

	for _, a := range advances {
		if a.WorkerID == w.ID && a.Status == advance.StatusApproved {
			stmt.ApprovedAdvanceCount++
			stmt.AdvanceDeduction += a.Amount
		}
	}

	gross := stmt.GrossEarnings()
	stmt.FinalPay = gross - stmt.LeaveDeduction - stmt.AdvanceDeduction
	stmt.NetPayable = gross - stmt.AdvanceDeduction

	return stmt
}
