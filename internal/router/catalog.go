package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CatalogRouter 工人、員工、產品
type CatalogRouter struct {
	workerHandler   *handler.WorkerHandler
	employeeHandler *handler.EmployeeHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.Auth
	idempotency     *middleware.Idempotency
}

func NewCatalogRouter(
	workerHandler *handler.WorkerHandler,
	employeeHandler *handler.EmployeeHandler,
	productHandler *handler.ProductHandler,
	authMiddleware *middleware.Auth,
	idempotency *middleware.Idempotency,
) *CatalogRouter {
	return &CatalogRouter{
		workerHandler:   workerHandler,
		employeeHandler: employeeHandler,
		productHandler:  productHandler,
		authMiddleware:  authMiddleware,
		idempotency:     idempotency,
	}
}

func (cr *CatalogRouter) RegisterRoutes(authed *gin.RouterGroup) {
	workers := authed.Group("/workers")
	{
		workers.POST("", cr.idempotency.Guard(), cr.workerHandler.Create)
		workers.GET("", cr.workerHandler.List)
		workers.GET("/:id", cr.workerHandler.Get)
		workers.PUT("/:id", cr.workerHandler.Update)
		workers.DELETE("/:id", cr.workerHandler.Delete)
		workers.POST("/:id/bank-image", cr.workerHandler.UploadBankImage)
	}

	employees := authed.Group("/employees", cr.authMiddleware.RequireAdmin())
	{
		employees.POST("", cr.idempotency.Guard(), cr.employeeHandler.Create)
		employees.GET("", cr.employeeHandler.List)
		employees.GET("/:id", cr.employeeHandler.Get)
		employees.PUT("/:id", cr.employeeHandler.Update)
		employees.POST("/:id/bank-image", cr.employeeHandler.UploadBankImage)
	}

	products := authed.Group("/products")
	{
		products.POST("", cr.idempotency.Guard(), cr.productHandler.Create)
		products.GET("", cr.productHandler.List)
		products.GET("/:id", cr.productHandler.Get)
		products.PUT("/:id", cr.productHandler.Update)
		products.GET("/:id/operations", cr.productHandler.ListOperations)
		products.POST("/:id/operations", cr.idempotency.Guard(), cr.productHandler.CreateOperation)
		products.POST("/:id/pattern-image", cr.productHandler.UploadPatternImage)
	}
}
