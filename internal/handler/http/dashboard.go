package http

import (
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/dashboard"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}
