package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	// UpdateStatus moves a pending leave to status; it fails with ErrLeaveAlreadyDecided otherwise.
	UpdateStatus(ctx context.Context, id string, status Status, decidedAt time.Time) error
}
