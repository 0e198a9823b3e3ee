package dashboard

import (
	"sort"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/dashboard"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
)

// BuildOverview projects the four collections into the admin overview for today.
// today must be a date-only value.
func BuildOverview(
	settings payroll.Settings,
	today time.Time,
	workers []worker.Worker,
	shifts []shift.Shift,
	leaves []leave.Leave,
	advances []advance.AdvanceRequest,
) dashboard.Overview {
	byID := make(map[string]*worker.Worker, len(workers))
	for i := range workers {
		byID[workers[i].ID] = &workers[i]
	}

	o := dashboard.Overview{
		Today:             today,
		PresentToday:      []dashboard.PresentWorker{},
		PendingShifts:     []shift.Shift{},
		PendingLeaves:     []leave.Leave{},
		PendingAdvances:   []advance.AdvanceRequest{},
		DueAdvances:       []advance.AdvanceRequest{},
		ActionItems:       []dashboard.ActionItem{},
		ExpiringDocuments: []dashboard.ExpiringWorker{},
	}

	for _, s := range shifts {
		if utils.SameDate(s.Date, today) {
			o.PresentTodayCount++
			if w, ok := byID[s.WorkerID]; ok {
				o.PresentToday = append(o.PresentToday, dashboard.PresentWorker{Worker: *w, Shift: s})
			}
		}
		if s.IsPending() {
			o.PendingShifts = append(o.PendingShifts, s)
		}
	}

	for _, l := range leaves {
		if l.IsPending() {
			o.PendingLeaves = append(o.PendingLeaves, l)
		}
	}

	for _, a := range advances {
		switch {
		case a.IsPending():
			o.PendingAdvances = append(o.PendingAdvances, a)
		case a.IsDue(today):
			o.DueAdvances = append(o.DueAdvances, a)
		}
	}
	sort.SliceStable(o.DueAdvances, func(i, j int) bool {
		return o.DueAdvances[i].PaymentDate.Before(*o.DueAdvances[j].PaymentDate)
	})

	o.Pending = dashboard.PendingCounts{
		Shifts:   len(o.PendingShifts),
		Leaves:   len(o.PendingLeaves),
		Advances: len(o.PendingAdvances),
	}
	o.ActionItems = actionItems(o)
	o.ExpiringDocuments = expiringDocuments(today, workers)
	o.OvertimeLeaders = overtimeLeaders(settings, shifts, byID)

	return o
}

// actionItems lists decisions in priority order: due advances first.
func actionItems(o dashboard.Overview) []dashboard.ActionItem {
	items := make([]dashboard.ActionItem, 0, len(o.DueAdvances)+o.Pending.Total())

	for _, a := range o.DueAdvances {
		items = append(items, dashboard.ActionItem{Kind: dashboard.ActionDueAdvance, ID: a.ID, WorkerID: a.WorkerID, Date: *a.PaymentDate})
	}
	for _, a := range o.PendingAdvances {
		items = append(items, dashboard.ActionItem{Kind: dashboard.ActionPendingAdvance, ID: a.ID, WorkerID: a.WorkerID, Date: a.RequestDate})
	}
	for _, l := range o.PendingLeaves {
		items = append(items, dashboard.ActionItem{Kind: dashboard.ActionPendingLeave, ID: l.ID, WorkerID: l.WorkerID, Date: l.Date})
	}
	for _, s := range o.PendingShifts {
		items = append(items, dashboard.ActionItem{Kind: dashboard.ActionPendingShift, ID: s.ID, WorkerID: s.WorkerID, Date: s.Date})
	}

	return items
}

func expiringDocuments(today time.Time, workers []worker.Worker) []dashboard.ExpiringWorker {
	out := []dashboard.ExpiringWorker{}

	for _, w := range workers {
		if !w.IsActive {
			continue
		}

		var docs []dashboard.ExpiringDocument
		if d, ok := expiring(today, dashboard.DocumentIqama, w.IqamaExpiry); ok {
			docs = append(docs, d)
		}
		if d, ok := expiring(today, dashboard.DocumentPassport, w.PassportExpiry); ok {
			docs = append(docs, d)
		}
		if len(docs) > 0 {
			out = append(out, dashboard.ExpiringWorker{Worker: w, Documents: docs})
		}
	}

	return out
}

func expiring(today time.Time, kind dashboard.DocumentKind, expiry *time.Time) (dashboard.ExpiringDocument, bool) {
	if expiry == nil {
		return dashboard.ExpiringDocument{}, false
	}
	daysLeft := daysBetween(today, *expiry)
	if daysLeft > dashboard.ExpiryWindowDays {
		return dashboard.ExpiringDocument{}, false
	}
	return dashboard.ExpiringDocument{Kind: kind, ExpiresOn: *expiry, DaysLeft: daysLeft}, true
}

func daysBetween(from, to time.Time) int {
	from = utils.DateOf(from, nil)
	to = utils.DateOf(to, nil)
	return int(to.Sub(from).Hours() / 24)
}

// overtimeLeaders ranks workers by overtime accumulated over all shifts.
// Ties come out in no particular order.
func overtimeLeaders(settings payroll.Settings, shifts []shift.Shift, byID map[string]*worker.Worker) []dashboard.OvertimeLeader {
	totals := map[string]float64{}
	for _, s := range shifts {
		if ot := s.TotalHours - settings.BaseHours; ot > 0 {
			totals[s.WorkerID] += ot
		}
	}

	leaders := make([]dashboard.OvertimeLeader, 0, len(totals))
	for id, hours := range totals {
		leaders = append(leaders, dashboard.OvertimeLeader{WorkerID: id, Worker: byID[id], OvertimeHours: hours})
	}
	sort.Slice(leaders, func(i, j int) bool {
		return leaders[i].OvertimeHours > leaders[j].OvertimeHours
	})

	if len(leaders) > dashboard.LeaderboardSize {
		leaders = leaders[:dashboard.LeaderboardSize]
	}
	return leaders
}
