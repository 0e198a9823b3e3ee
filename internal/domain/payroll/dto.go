package payroll

import (
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== BREAKDOWN DTOs ==========

type BreakdownPreviewRequest struct {
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
}

func (r *BreakdownPreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be HH:MM"})
	}
	if r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "break_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RatesResponse struct {
	Daily    decimal.Decimal `json:"daily"`
	Hourly   decimal.Decimal `json:"hourly"`
	Overtime decimal.Decimal `json:"overtime"`
}

func NewRatesResponse(r Rates) RatesResponse {
	return RatesResponse{
		Daily:    utils.Money(r.Daily),
		Hourly:   utils.Money(r.Hourly),
		Overtime: utils.Money(r.Overtime),
	}
}

type BreakdownResponse struct {
	Rates            RatesResponse   `json:"rates"`
	TotalHours       decimal.Decimal `json:"total_hours"`
	RegularHours     decimal.Decimal `json:"regular_hours"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	RegularEarnings  decimal.Decimal `json:"regular_earnings"`
	OvertimeEarnings decimal.Decimal `json:"overtime_earnings"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
}

func NewBreakdownResponse(rates Rates, b ShiftBreakdown) BreakdownResponse {
	return BreakdownResponse{
		Rates:            NewRatesResponse(rates),
		TotalHours:       utils.Hours(b.TotalHours),
		RegularHours:     utils.Hours(b.RegularHours),
		OvertimeHours:    utils.Hours(b.OvertimeHours),
		RegularEarnings:  utils.Money(b.RegularEarnings),
		OvertimeEarnings: utils.Money(b.OvertimeEarnings),
		TotalEarnings:    utils.Money(b.TotalEarnings()),
	}
}

// ========== STATEMENT DTOs ==========

type StatementFilter struct {
	WorkerIDs  []string // Empty = all workers
	ActiveOnly bool
}

type StatementResponse struct {
	WorkerID             string          `json:"worker_id"`
	WorkerName           string          `json:"worker_name"`
	WorkerCode           *string         `json:"worker_code,omitempty"`
	Rates                RatesResponse   `json:"rates"`
	ApprovedShiftCount   int             `json:"approved_shift_count"`
	PendingShiftCount    int             `json:"pending_shift_count"`
	RegularHours         decimal.Decimal `json:"regular_hours"`
	OvertimeHours        decimal.Decimal `json:"overtime_hours"`
	TotalHours           decimal.Decimal `json:"total_hours"`
	RegularEarnings      decimal.Decimal `json:"regular_earnings"`
	OvertimeEarnings     decimal.Decimal `json:"overtime_earnings"`
	PendingEarnings      decimal.Decimal `json:"pending_earnings"`
	TotalWorkedHours     decimal.Decimal `json:"total_worked_hours"`
	RejectedLeaveCount   int             `json:"rejected_leave_count"`
	LeaveDeduction       decimal.Decimal `json:"leave_deduction"`
	ApprovedAdvanceCount int             `json:"approved_advance_count"`
	AdvanceDeduction     decimal.Decimal `json:"advance_deduction"`
	FinalPay             decimal.Decimal `json:"final_pay"`
	NetPayable           decimal.Decimal `json:"net_payable"`
	IsNegative           bool            `json:"is_negative"`
}

func NewStatementResponse(s Statement) StatementResponse {
	return StatementResponse{
		WorkerID:             s.WorkerID,
		WorkerName:           s.WorkerName,
		WorkerCode:           s.WorkerCode,
		Rates:                NewRatesResponse(s.Rates),
		ApprovedShiftCount:   s.ApprovedShiftCount,
		PendingShiftCount:    s.PendingShiftCount,
		RegularHours:         utils.Hours(s.RegularHours),
		OvertimeHours:        utils.Hours(s.OvertimeHours),
		TotalHours:           utils.Hours(s.RegularHours + s.OvertimeHours),
		RegularEarnings:      utils.Money(s.RegularEarnings),
		OvertimeEarnings:     utils.Money(s.OvertimeEarnings),
		PendingEarnings:      utils.Money(s.PendingEarnings),
		TotalWorkedHours:     utils.Hours(s.TotalWorkedHours),
		RejectedLeaveCount:   s.RejectedLeaveCount,
		LeaveDeduction:       utils.Money(s.LeaveDeduction),
		ApprovedAdvanceCount: s.ApprovedAdvanceCount,
		AdvanceDeduction:     utils.Money(s.AdvanceDeduction),
		FinalPay:             utils.Money(s.FinalPay),
		NetPayable:           utils.Money(s.NetPayable),
		IsNegative:           s.IsNegative(),
	}
}

type SkippedWorker struct {
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	Reason     string `json:"reason"`
}

type StatementTotals struct {
	WorkerCount           int             `json:"worker_count"`
	TotalRegularEarnings  decimal.Decimal `json:"total_regular_earnings"`
	TotalOvertimeEarnings decimal.Decimal `json:"total_overtime_earnings"`
	TotalLeaveDeduction   decimal.Decimal `json:"total_leave_deduction"`
	TotalAdvanceDeduction decimal.Decimal `json:"total_advance_deduction"`
	TotalFinalPay         decimal.Decimal `json:"total_final_pay"`
	NegativeCount         int             `json:"negative_count"`
}

type StatementListResponse struct {
	Statements []StatementResponse `json:"statements"`
	Skipped    []SkippedWorker     `json:"skipped"`
	Totals     StatementTotals     `json:"totals"`
}
