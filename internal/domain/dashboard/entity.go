package dashboard

import (
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
)

const (
	// ExpiryWindowDays is how far ahead document expiries are flagged, inclusive.
	ExpiryWindowDays = 30
	// LeaderboardSize caps the overtime leaderboard.
	LeaderboardSize = 3
)

type PresentWorker struct {
	Worker worker.Worker
	Shift  shift.Shift
}

type PendingCounts struct {
	Shifts   int
	Leaves   int
	Advances int
}

func (p PendingCounts) Total() int {
	return p.Shifts + p.Leaves + p.Advances
}

type ActionKind string

// Action kinds in the order they are surfaced.
const (
	ActionDueAdvance     ActionKind = "due_advance"
	ActionPendingAdvance ActionKind = "pending_advance"
	ActionPendingLeave   ActionKind = "pending_leave"
	ActionPendingShift   ActionKind = "pending_shift"
)

// ActionItem is one decision waiting on an admin.
type ActionItem struct {
	Kind     ActionKind
	ID       string
	WorkerID string
	Date     time.Time
}

type DocumentKind string

const (
	DocumentIqama    DocumentKind = "iqama"
	DocumentPassport DocumentKind = "passport"
)

type ExpiringDocument struct {
	Kind      DocumentKind
	ExpiresOn time.Time
	DaysLeft  int // negative once expired
}

type ExpiringWorker struct {
	Worker    worker.Worker
	Documents []ExpiringDocument
}

type OvertimeLeader struct {
	WorkerID      string
	Worker        *worker.Worker
	OvertimeHours float64
}

// Overview is the admin-facing projection over all collections for one day.
type Overview struct {
	Today             time.Time
	PresentTodayCount int
	PresentToday      []PresentWorker
	PendingShifts     []shift.Shift
	PendingLeaves     []leave.Leave
	PendingAdvances   []advance.AdvanceRequest
	DueAdvances       []advance.AdvanceRequest
	Pending           PendingCounts
	ActionItems       []ActionItem
	ExpiringDocuments []ExpiringWorker
	OvertimeLeaders   []OvertimeLeader
}
