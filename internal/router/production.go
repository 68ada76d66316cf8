package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ProductionRouter struct {
	productionHandler *handler.ProductionHandler
	assignmentHandler *handler.AssignmentHandler
	idempotency       *middleware.Idempotency
}

func NewProductionRouter(
	productionHandler *handler.ProductionHandler,
	assignmentHandler *handler.AssignmentHandler,
	idempotency *middleware.Idempotency,
) *ProductionRouter {
	return &ProductionRouter{
		productionHandler: productionHandler,
		assignmentHandler: assignmentHandler,
		idempotency:       idempotency,
	}
}

func (pr *ProductionRouter) RegisterRoutes(authed *gin.RouterGroup) {
	productions := authed.Group("/productions")
	{
		productions.POST("", pr.idempotency.Guard(), pr.productionHandler.Create)
		productions.GET("", pr.productionHandler.List)
		productions.GET("/:id", pr.productionHandler.Get)
		productions.PUT("/:id", pr.productionHandler.Update)
		productions.GET("/:id/operations", pr.productionHandler.ListOperations)
		productions.POST("/:id/operations/:operationId/assignments", pr.idempotency.Guard(), pr.productionHandler.AssignWorker)
		productions.GET("/:id/progress", pr.productionHandler.Progress)
	}

	assignments := authed.Group("/assignments")
	{
		assignments.GET("", pr.assignmentHandler.List)
		assignments.GET("/options", pr.assignmentHandler.Options)
		assignments.GET("/by-date/:date", pr.assignmentHandler.ByDate)
	}
}
