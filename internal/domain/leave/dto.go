package leave

import (
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
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

type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // "accepted" or "rejected"
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusAccepted), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'accepted' or 'rejected'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	WorkerID *string
	Status   *string
}

type LeaveResponse struct {
	ID        string  `json:"id"`
	WorkerID  string  `json:"worker_id"`
	Date      string  `json:"date"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
	DecidedAt *string `json:"decided_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	var decidedAt *string
	if l.DecidedAt != nil {
		s := l.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return LeaveResponse{
		ID:        l.ID,
		WorkerID:  l.WorkerID,
		Date:      utils.FormatDate(l.Date),
		Reason:    l.Reason,
		Status:    string(l.Status),
		DecidedAt: decidedAt,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}

func NewLeaveResponses(leaves []Leave) []LeaveResponse {
	result := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		result = append(result, NewLeaveResponse(l))
	}
	return result
}
