package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Skanda2852b/payrollmanagement/internal/middleware"
	"github.com/Skanda2852b/payrollmanagement/internal/service"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary godoc
// @Summary Aggregated expense/salary totals for the dashboard charts
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummary
// @Failure 401 {object} apierror.APIError
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
