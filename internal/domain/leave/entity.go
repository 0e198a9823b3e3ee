package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Leave is a leave-of-absence request for one date.
// A rejected leave costs the worker one day's pay.
type Leave struct {
	ID        string
	WorkerID  string
	Date      time.Time
	Reason    string
	Status    Status
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *Leave) IsPending() bool {
	return l.Status == StatusPending
}

func (l *Leave) IsRejected() bool {
	return l.Status == StatusRejected
}
