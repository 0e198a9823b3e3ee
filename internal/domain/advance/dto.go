package advance

import (
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAdvanceRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

func (r *CreateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideAdvanceRequest carries an admin decision. Action is "approve",
// "reject" or "schedule"; schedule requires PaymentDate.
type DecideAdvanceRequest struct {
	ID          string  `json:"-"`
	Action      string  `json:"action"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *DecideAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Action, []string{"approve", "reject", "schedule"}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "must be 'approve', 'reject' or 'schedule'"})
	}
	if r.Action == "schedule" {
		if r.PaymentDate == nil {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "is required when scheduling"})
		} else if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TargetStatus maps the action onto the advance status it produces.
func (r *DecideAdvanceRequest) TargetStatus() Status {
	switch r.Action {
	case "approve":
		return StatusApproved
	case "reject":
		return StatusRejected
	default:
		return StatusScheduled
	}
}

type AdvanceFilter struct {
	WorkerID *string
	Status   *string
}

type AdvanceResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
	RequestDate string          `json:"request_date"`
	Status      string          `json:"status"`
	PaymentDate *string         `json:"payment_date,omitempty"`
	DecidedAt   *string         `json:"decided_at,omitempty"`
}

func NewAdvanceResponse(a AdvanceRequest) AdvanceResponse {
	var decidedAt *string
	if a.DecidedAt != nil {
		s := a.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return AdvanceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		WorkerName:  a.WorkerName,
		Amount:      utils.Money(a.Amount),
		Reason:      a.Reason,
		RequestDate: utils.FormatDate(a.RequestDate),
		Status:      string(a.Status),
		PaymentDate: utils.FormatDatePtr(a.PaymentDate),
		DecidedAt:   decidedAt,
	}
}

func NewAdvanceResponses(advances []AdvanceRequest) []AdvanceResponse {
	result := make([]AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		result = append(result, NewAdvanceResponse(a))
	}
	return result
}
