package dashboard

import (
	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type PresentWorkerResponse struct {
	Worker worker.WorkerResponse `json:"worker"`
	Shift  shift.ShiftResponse   `json:"shift"`
}

type PendingCountsResponse struct {
	Shifts   int `json:"shifts"`
	Leaves   int `json:"leaves"`
	Advances int `json:"advances"`
	Total    int `json:"total"`
}

type ActionItemResponse struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
}

type ExpiringDocumentResponse struct {
	Kind      string `json:"kind"`
	ExpiresOn string `json:"expires_on"`
	DaysLeft  int    `json:"days_left"`
}

type ExpiringWorkerResponse struct {
	Worker    worker.WorkerResponse      `json:"worker"`
	Documents []ExpiringDocumentResponse `json:"documents"`
}

type OvertimeLeaderResponse struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name,omitempty"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type OverviewResponse struct {
	Today             string                    `json:"today"`
	PresentTodayCount int                       `json:"present_today_count"`
	PresentToday      []PresentWorkerResponse   `json:"present_today"`
	Pending           PendingCountsResponse     `json:"pending"`
	DueAdvances       []advance.AdvanceResponse `json:"due_advances"`
	PendingAdvances   []advance.AdvanceResponse `json:"pending_advances"`
	PendingLeaves     []leave.LeaveResponse     `json:"pending_leaves"`
	PendingShifts     []shift.ShiftResponse     `json:"pending_shifts"`
	ActionItems       []ActionItemResponse      `json:"action_items"`
	ExpiringDocuments []ExpiringWorkerResponse  `json:"expiring_documents"`
	OvertimeLeaders   []OvertimeLeaderResponse  `json:"overtime_leaders"`
}

func NewOverviewResponse(o Overview) OverviewResponse {
	resp := OverviewResponse{
		Today:             utils.FormatDate(o.Today),
		PresentTodayCount: o.PresentTodayCount,
		PresentToday:      make([]PresentWorkerResponse, 0, len(o.PresentToday)),
		Pending: PendingCountsResponse{
			Shifts:   o.Pending.Shifts,
			Leaves:   o.Pending.Leaves,
			Advances: o.Pending.Advances,
			Total:    o.Pending.Total(),
		},
		DueAdvances:       advance.NewAdvanceResponses(o.DueAdvances),
		PendingAdvances:   advance.NewAdvanceResponses(o.PendingAdvances),
		PendingLeaves:     leave.NewLeaveResponses(o.PendingLeaves),
		PendingShifts:     shift.NewShiftResponses(o.PendingShifts),
		ActionItems:       make([]ActionItemResponse, 0, len(o.ActionItems)),
		ExpiringDocuments: make([]ExpiringWorkerResponse, 0, len(o.ExpiringDocuments)),
		OvertimeLeaders:   make([]OvertimeLeaderResponse, 0, len(o.OvertimeLeaders)),
	}

	for _, p := range o.PresentToday {
		resp.PresentToday = append(resp.PresentToday, PresentWorkerResponse{
			Worker: worker.NewWorkerResponse(p.Worker),
			Shift:  shift.NewShiftResponse(p.Shift),
		})
	}
	for _, a := range o.ActionItems {
		resp.ActionItems = append(resp.ActionItems, ActionItemResponse{
			Kind:     string(a.Kind),
			ID:       a.ID,
			WorkerID: a.WorkerID,
			Date:     utils.FormatDate(a.Date),
		})
	}
	for _, e := range o.ExpiringDocuments {
		docs := make([]ExpiringDocumentResponse, 0, len(e.Documents))
		for _, d := range e.Documents {
			docs = append(docs, ExpiringDocumentResponse{
				Kind:      string(d.Kind),
				ExpiresOn: utils.FormatDate(d.ExpiresOn),
				DaysLeft:  d.DaysLeft,
			})
		}
		resp.ExpiringDocuments = append(resp.ExpiringDocuments, ExpiringWorkerResponse{
			Worker:    worker.NewWorkerResponse(e.Worker),
			Documents: docs,
		})
	}
	for _, l := range o.OvertimeLeaders {
		name := ""
		if l.Worker != nil {
			name = l.Worker.Name
		}
		resp.OvertimeLeaders = append(resp.OvertimeLeaders, OvertimeLeaderResponse{
			WorkerID:      l.WorkerID,
			WorkerName:    name,
			OvertimeHours: utils.Hours(l.OvertimeHours),
		})
	}

	return resp
}
