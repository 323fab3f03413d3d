package handler

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/service"
)

// DashboardHandler handles the dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Snapshot handles GET /api/v1/dashboard
// @Summary      Dashboard snapshot
// @Description  Sale and revenue totals, inventory health, and the five most recent sales
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse{data=domain.DashboardData}
// @Failure      401 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	data, err := h.dashboardService.Snapshot(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, data)
}
