package payroll

import (
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func newShift(workerID string, d int, start, end string, breakMinutes int, approved bool) shift.Shift {
	parse := func(hhmm string) time.Time {
		c, _ := time.Parse("15:04", hhmm)
		return day(d).Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute)
	}
	status := shift.StatusPending
	if approved {
		status = shift.StatusCompleted
	}
	return shift.Shift{
		ID:           workerID + "-shift-" + start,
		WorkerID:     workerID,
		Date:         day(d),
		StartTime:    parse(start),
		EndTime:      parse(end),
		BreakMinutes: breakMinutes,
		Status:       status,
		IsApproved:   approved,
	}
}

func TestBuildStatement_Example(t *testing.T) {
	w := worker.Worker{ID: "w1", Name: "Rahim", MonthlySalary: 3000, IsActive: true}

	shifts := []shift.Shift{
		newShift("w1", 1, "08:00", "18:30", 30, true),
		newShift("w1", 2, "08:00", "19:30", 30, true),
	}
	leaves := []leave.Leave{
		{ID: "l1", WorkerID: "w1", Date: day(3), Status: leave.StatusRejected},
	}
	advances := []advance.AdvanceRequest{
		{ID: "a1", WorkerID: "w1", Amount: 50, Status: advance.StatusApproved},
	}

	stmt := BuildStatement(payroll.DefaultSettings(), w, shifts, leaves, advances)

	assert.Equal(t, 2, stmt.ApprovedShiftCount)
	assert.InDelta(t, 20.0, stmt.RegularHours, 1e-9)
	assert.InDelta(t, 1.0, stmt.OvertimeHours, 1e-9)
	assert.InDelta(t, 200.0, stmt.RegularEarnings, 1e-9)
	assert.InDelta(t, 15.0, stmt.OvertimeEarnings, 1e-9)
	assert.InDelta(t, 100.0, stmt.LeaveDeduction, 1e-9)
	assert.InDelta(t, 50.0, stmt.AdvanceDeduction, 1e-9)
	assert.InDelta(t, 65.0, stmt.FinalPay, 1e-9)
	assert.InDelta(t, 165.0, stmt.NetPayable, 1e-9)
	assert.False(t, stmt.IsNegative())
}

func TestBuildStatement_IgnoresUnapprovedAndOtherWorkers(t *testing.T) {
	w := worker.Worker{ID: "w1", MonthlySalary: 3000}

	shifts := []shift.Shift{
		newShift("w1", 1, "08:00", "18:30", 30, true),
		newShift("w1", 2, "08:00", "19:30", 30, false),
		newShift("w2", 1, "08:00", "20:00", 30, true),
	}
	leaves := []leave.Leave{
		{WorkerID: "w1", Status: leave.StatusPending},
		{WorkerID: "w1", Status: leave.StatusAccepted},
		{WorkerID: "w2", Status: leave.StatusRejected},
	}
	advances := []advance.AdvanceRequest{
		{WorkerID: "w1", Amount: 10, Status: advance.StatusPending},
		{WorkerID: "w1", Amount: 20, Status: advance.StatusScheduled},
		{WorkerID: "w1", Amount: 30, Status: advance.StatusRejected},
		{WorkerID: "w2", Amount: 40, Status: advance.StatusApproved},
	}

	stmt := BuildStatement(payroll.DefaultSettings(), w, shifts, leaves, advances)

	assert.Equal(t, 1, stmt.ApprovedShiftCount)
	assert.Equal(t, 1, stmt.PendingShiftCount)
	assert.InDelta(t, 100.0, stmt.GrossEarnings(), 1e-9)
	assert.InDelta(t, 115.0, stmt.PendingEarnings, 1e-9)
	assert.InDelta(t, 21.0, stmt.TotalWorkedHours, 1e-9)
	assert.Zero(t, stmt.LeaveDeduction)
	assert.Zero(t, stmt.AdvanceDeduction)
	assert.InDelta(t, 100.0, stmt.FinalPay, 1e-9)
}

func TestBuildStatement_NegativeBalanceIsKept(t *testing.T) {
	w := worker.Worker{ID: "w1", MonthlySalary: 3000}

	stmt := BuildStatement(payroll.DefaultSettings(), w,
		[]shift.Shift{newShift("w1", 1, "08:00", "12:00", 0, true)},
		nil,
		[]advance.AdvanceRequest{{WorkerID: "w1", Amount: 500, Status: advance.StatusApproved}},
	)

	assert.InDelta(t, -460.0, stmt.FinalPay, 1e-9)
	assert.True(t, stmt.IsNegative())
}

func TestBuildStatement_LeaveDeductionIsLinear(t *testing.T) {
	w := worker.Worker{ID: "w1", MonthlySalary: 3000}
	settings := payroll.DefaultSettings()

	for n := 0; n <= 5; n++ {
		leaves := make([]leave.Leave, n)
		for i := range leaves {
			leaves[i] = leave.Leave{WorkerID: "w1", Date: day(i + 1), Status: leave.StatusRejected}
		}

		stmt := BuildStatement(settings, w, nil, leaves, nil)

		assert.Equal(t, n, stmt.RejectedLeaveCount)
		assert.InDelta(t, float64(n)*100, stmt.LeaveDeduction, 1e-9)
		assert.InDelta(t, stmt.GrossEarnings()-stmt.LeaveDeduction-stmt.AdvanceDeduction, stmt.FinalPay, 1e-9)
	}
}

func TestBuildStatement_Empty(t *testing.T) {
	stmt := BuildStatement(payroll.DefaultSettings(), worker.Worker{ID: "w1", MonthlySalary: 3000}, nil, nil, nil)

	assert.Zero(t, stmt.FinalPay)
	assert.Zero(t, stmt.ApprovedShiftCount)
	assert.InDelta(t, 100.0, stmt.Rates.Daily, 1e-9)
}
