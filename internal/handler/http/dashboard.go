package http

import (
	"net/http"

	"github.com/nexoptima/ems-backend-go/internal/domain/dashboard"
	"github.com/nexoptima/ems-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	stats, err := h.dashboardService.Stats(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Analytics implements DashboardHandler.
func (h *DashboardHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(r)
	if !ok {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	analytics, err := h.dashboardService.Analytics(r.Context(), caller)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, analytics)
}
