package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/dashboard"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/utils"
)

type DashboardServiceImpl struct {
	snapshotRepo payroll.SnapshotRepository
	settings     payroll.Settings
	loc          *time.Location
	now          func() time.Time
}

func NewDashboardService(snapshotRepo payroll.SnapshotRepository, settings payroll.Settings, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardServiceImpl{
		snapshotRepo: snapshotRepo,
		settings:     settings,
		loc:          loc,
		now:          time.Now,
	}
}

// GetOverview loads a fresh snapshot on every call; nothing is cached between requests.
func (s *DashboardServiceImpl) GetOverview(ctx context.Context) (dashboard.OverviewResponse, error) {
	snap, err := s.snapshotRepo.LoadSnapshot(ctx)
	if err != nil {
		return dashboard.OverviewResponse{}, fmt.Errorf("load dashboard snapshot: %w", err)
	}

	today := utils.DateOf(s.now(), s.loc)
	overview := BuildOverview(s.settings, today, snap.Workers, snap.Shifts, snap.Leaves, snap.Advances)

	return dashboard.NewOverviewResponse(overview), nil
}
