package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"

	"github.com/gin-gonic/gin"
)

type SalaryRouter struct {
	salaryHandler  *handler.SalaryHandler
	authMiddleware *middleware.Auth
	idempotency    *middleware.Idempotency
}

func NewSalaryRouter(
	salaryHandler *handler.SalaryHandler,
	authMiddleware *middleware.Auth,
	idempotency *middleware.Idempotency,
) *SalaryRouter {
	return &SalaryRouter{salaryHandler: salaryHandler, authMiddleware: authMiddleware, idempotency: idempotency}
}

func (sr *SalaryRouter) RegisterRoutes(authed *gin.RouterGroup) {
	workers := authed.Group("/salaries/workers")
	{
		workers.GET("", sr.salaryHandler.ListWorkers)
		workers.GET("/export", sr.salaryHandler.ExportWorkers)
		workers.POST("/recalculate", sr.salaryHandler.Recalculate)
		workers.PATCH("/:id/pay", sr.salaryHandler.PayWorker)
	}

	// 員工月薪只有管理員可見
	employees := authed.Group("/salaries/employees", sr.authMiddleware.RequireAdmin())
	{
		employees.POST("", sr.idempotency.Guard(), sr.salaryHandler.CreateEmployee)
		employees.GET("", sr.salaryHandler.ListEmployees)
		employees.PATCH("/:id/pay", sr.salaryHandler.PayEmployee)
	}
}
