package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	trace            *telemetry.Trace
	dashboardService *service.DashboardService
}

func NewDashboardHandler(trace *telemetry.Trace, dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{trace: trace, dashboardService: dashboardService}
}

// Summary 首頁統計
// @Summary 首頁統計；管理員另含員工數與未付薪資
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardDto
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.dashboardService.Summary(ctx, session)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
