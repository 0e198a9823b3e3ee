package worker

import "time"

type Role string

const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

type Worker struct {
	ID             string
	Name           string
	WorkerCode     *string
	Trade          *string
	Role           Role
	MonthlySalary  float64
	Phone          *string
	PhotoURL       *string
	PasswordHash   string
	IsActive       bool
	IqamaExpiry    *time.Time
	PassportExpiry *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin checks if the worker account carries admin privileges
func (w *Worker) IsAdmin() bool {
	return w.Role == RoleAdmin
}

// IsPayable reports whether rates can be derived for this worker.
func (w *Worker) IsPayable() bool {
	return w.MonthlySalary > 0
}
