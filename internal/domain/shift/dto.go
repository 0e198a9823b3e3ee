package shift

import (
	"strconv"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// LogShiftRequest is a worker's clock-in/out entry for one date.
// StartTime and EndTime are HH:MM wall-clock times on Date; an end before the
// start means the shift ran past midnight.
type LogShiftRequest struct {
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *LogShiftRequest) Validate() error {
	return validateEntry("", r.Date, r.StartTime, r.EndTime, r.BreakMinutes)
}

type ImportShiftEntry struct {
	WorkerID     string  `json:"worker_id"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	Notes        *string `json:"notes,omitempty"`
}

type ImportShiftsRequest struct {
	Entries []ImportShiftEntry `json:"entries"`
}

func (r *ImportShiftsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one entry is required"})
	}
	for i, e := range r.Entries {
		prefix := "entries[" + strconv.Itoa(i) + "]."
		if validator.IsEmpty(e.WorkerID) {
			errs = append(errs, validator.ValidationError{Field: prefix + "worker_id", Message: "is required"})
		}
		if err := validateEntry(prefix, e.Date, e.StartTime, e.EndTime, e.BreakMinutes); err != nil {
			errs = append(errs, err.(validator.ValidationErrors)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEntry(prefix, date, start, end string, breakMinutes int) error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(date); !ok {
		errs = append(errs, validator.ValidationError{Field: prefix + "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsValidClock(start) {
		errs = append(errs, validator.ValidationError{Field: prefix + "start_time", Message: "must be HH:MM"})
	}
	if !validator.IsValidClock(end) {
		errs = append(errs, validator.ValidationError{Field: prefix + "end_time", Message: "must be HH:MM"})
	}
	if breakMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: prefix + "break_minutes", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportSkip struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Reason   string `json:"reason"`
}

type ImportShiftsResponse struct {
	Imported int          `json:"imported"`
	Skipped  []ImportSkip `json:"skipped"`
}

type ShiftFilter struct {
	WorkerID *string
	Date     *time.Time
	Status   *string
}

type ShiftResponse struct {
	ID                string          `json:"id"`
	WorkerID          string          `json:"worker_id"`
	Date              string          `json:"date"`
	StartTime         string          `json:"start_time"`
	EndTime           string          `json:"end_time"`
	BreakMinutes      int             `json:"break_minutes"`
	Notes             *string         `json:"notes,omitempty"`
	Status            string          `json:"status"`
	IsApproved        bool            `json:"is_approved"`
	TotalHours        decimal.Decimal `json:"total_hours"`
	EstimatedEarnings decimal.Decimal `json:"estimated_earnings"`
	ApprovedEarnings  decimal.Decimal `json:"approved_earnings"`
}

func NewShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:                s.ID,
		WorkerID:          s.WorkerID,
		Date:              utils.FormatDate(s.Date),
		StartTime:         s.StartTime.Format(time.RFC3339),
		EndTime:           s.EndTime.Format(time.RFC3339),
		BreakMinutes:      s.BreakMinutes,
		Notes:             s.Notes,
		Status:            string(s.Status),
		IsApproved:        s.IsApproved,
		TotalHours:        utils.Hours(s.TotalHours),
		EstimatedEarnings: utils.Money(s.EstimatedEarnings),
		ApprovedEarnings:  utils.Money(s.ApprovedEarnings),
	}
}

func NewShiftResponses(shifts []Shift) []ShiftResponse {
	result := make([]ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		result = append(result, NewShiftResponse(s))
	}
	return result
}
