package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetOverview builds the admin overview for the current business day
	GetOverview(ctx context.Context) (OverviewResponse, error)
}
