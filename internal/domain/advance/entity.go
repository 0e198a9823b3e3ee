package advance

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusScheduled Status = "scheduled"
)

// AdvanceRequest is a cash advance against future pay. Only approved advances
// are deducted from payroll; scheduled ones wait for a decision on PaymentDate.
type AdvanceRequest struct {
	ID          string
	WorkerID    string
	WorkerName  string
	Amount      float64
	Reason      string
	RequestDate time.Time
	Status      Status
	PaymentDate *time.Time
	DecidedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusScheduled},
	StatusScheduled: {StatusApproved, StatusRejected},
}

// CanTransition reports whether an advance in status from may move to to.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (a *AdvanceRequest) IsPending() bool {
	return a.Status == StatusPending
}

// IsDue reports whether a scheduled advance has reached its payment date and needs a decision.
func (a *AdvanceRequest) IsDue(today time.Time) bool {
	return a.Status == StatusScheduled && a.PaymentDate != nil && !a.PaymentDate.After(today)
}
