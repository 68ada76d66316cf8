package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"

	"github.com/gin-gonic/gin"
)

type ReportRouter struct {
	reportHandler    *handler.ReportHandler
	dashboardHandler *handler.DashboardHandler
}

func NewReportRouter(reportHandler *handler.ReportHandler, dashboardHandler *handler.DashboardHandler) *ReportRouter {
	return &ReportRouter{reportHandler: reportHandler, dashboardHandler: dashboardHandler}
}

func (rr *ReportRouter) RegisterRoutes(authed *gin.RouterGroup) {
	reports := authed.Group("/reports")
	{
		reports.GET("/productions/:id", rr.reportHandler.Production)
		reports.GET("/productions/:id/export", rr.reportHandler.ExportProduction)
		reports.GET("/workers", rr.reportHandler.Workers)
	}
	authed.GET("/dashboard", rr.dashboardHandler.Summary)
}
