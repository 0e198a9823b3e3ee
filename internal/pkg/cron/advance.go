package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
)

const DueAdvancesJobName = "due-advances"

type AdvanceJobs struct {
	advanceService advance.AdvanceService
	loc            *time.Location
	now            func() time.Time
}

func NewAdvanceJobs(advanceService advance.AdvanceService, loc *time.Location) *AdvanceJobs {
	return &AdvanceJobs{
		advanceService: advanceService,
		loc:            loc,
		now:            time.Now,
	}
}

func (j *AdvanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob(DueAdvancesJobName, interval, j.ReportDueAdvances)
}

// ReportDueAdvances warns about every scheduled advance whose payment date has arrived.
func (j *AdvanceJobs) ReportDueAdvances(ctx context.Context) error {
	today := utils.DateOf(j.now(), j.loc)

	due, err := j.advanceService.ListDue(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list due advances: %w", err)
	}

	for _, a := range due {
		var paymentDate string
		if a.PaymentDate != nil {
			paymentDate = *a.PaymentDate
		}
		slog.Warn("Scheduled advance is due",
			"advance_id", a.ID,
			"worker_id", a.WorkerID,
			"worker_name", a.WorkerName,
			"amount", a.Amount.String(),
			"payment_date", paymentDate,
		)
	}
	if len(due) > 0 {
		slog.Info("Cron: due advances awaiting decision", "count", len(due), "date", today.Format(time.DateOnly))
	}
	return nil
}
