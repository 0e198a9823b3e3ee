package payroll

import (
	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
)

// OvertimeMultiplier is applied to the hourly rate for hours beyond Settings.BaseHours.
const OvertimeMultiplier = 1.5

const (
	DefaultDaysInMonth = 30
	DefaultBaseHours   = 10
)

// Settings are the contract constants rates and overtime are derived from.
type Settings struct {
	DaysInMonth float64 // divisor turning a monthly salary into a daily rate
	BaseHours   float64 // hours in a working day; the overtime threshold per shift
}

func DefaultSettings() Settings {
	return Settings{
		DaysInMonth: DefaultDaysInMonth,
		BaseHours:   DefaultBaseHours,
	}
}

// Rates are unrounded; rounding happens only when presenting.
type Rates struct {
	Daily    float64
	Hourly   float64
	Overtime float64
}

// ShiftBreakdown splits one shift's worked time into regular and overtime parts.
// Every field is >= 0.
type ShiftBreakdown struct {
	TotalHours       float64
	RegularHours     float64
	OvertimeHours    float64
	RegularEarnings  float64
	OvertimeEarnings float64
}

func (b ShiftBreakdown) TotalEarnings() float64 {
	return b.RegularEarnings + b.OvertimeEarnings
}

// Statement is one worker's payroll for one evaluation pass.
// FinalPay is not floored at zero: deductions may exceed earnings.
type Statement struct {
	WorkerID   string
	WorkerName string
	WorkerCode *string
	Rates      Rates

	ApprovedShiftCount int
	PendingShiftCount  int
	RegularHours       float64
	OvertimeHours      float64
	RegularEarnings    float64
	OvertimeEarnings   float64

	// PendingEarnings is what unapproved shifts would pay; never part of FinalPay.
	PendingEarnings  float64
	TotalWorkedHours float64

	RejectedLeaveCount   int
	LeaveDeduction       float64
	ApprovedAdvanceCount int
	AdvanceDeduction     float64

	FinalPay float64
	// NetPayable is the worker-facing figure: approved earnings minus advances.
	NetPayable float64
}

func (s Statement) GrossEarnings() float64 {
	return s.RegularEarnings + s.OvertimeEarnings
}

func (s Statement) IsNegative() bool {
	return s.FinalPay < 0
}

// Snapshot is a read-only view of the collections payroll is computed over.
type Snapshot struct {
	Workers  []worker.Worker
	Shifts   []shift.Shift
	Leaves   []leave.Leave
	Advances []advance.AdvanceRequest
}
