package shift

import "time"

type Status string

const (
	StatusNone      Status = "none"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Shift is one attendance record for one worker on one calendar date.
// (WorkerID, Date) identifies the row for writes; re-logging a date replaces it.
type Shift struct {
	ID                string
	WorkerID          string
	Date              time.Time
	StartTime         time.Time
	EndTime           time.Time
	BreakMinutes      int
	Notes             *string
	Status            Status
	IsApproved        bool
	TotalHours        float64
	EstimatedEarnings float64
	ApprovedEarnings  float64
	ApprovedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsPending reports whether the shift still awaits admin approval
func (s *Shift) IsPending() bool {
	return s.Status == StatusPending && !s.IsApproved
}
