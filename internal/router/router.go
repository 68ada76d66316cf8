package router

import (
	docs "github.com/jainam30/mohil-enterprise/cmd/docs"
	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/middleware"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var ProviderSet = wire.NewSet(
	NewRouter,
	NewHealthRouter,
	NewAuthRouter,
	NewCatalogRouter,
	NewProductionRouter,
	NewSalaryRouter,
	NewReportRouter,
)

// 透過依賴注入將各子路由掛上 engine
func NewRouter(
	config *config.Configuration,
	traceEntry *middleware.TraceEntry,
	recovery *middleware.Recovery,
	cors *middleware.Cors,
	logger *middleware.Logger,
	responseMiddleware *middleware.Response,
	authMiddleware *middleware.Auth,
	healthRouter *HealthRouter,
	authRouter *AuthRouter,
	catalogRouter *CatalogRouter,
	productionRouter *ProductionRouter,
	salaryRouter *SalaryRouter,
	reportRouter *ReportRouter,
) *gin.Engine {

	switch config.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(traceEntry.Handler())
	router.Use(logger.LoggerHandler())
	router.Use(cors.CorsHandler())
	router.Use(recovery.ErrorHandler())
	router.Use(responseMiddleware.FormatHandler())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if config.App.SwaggerEnabled {
		router.GET("/swagger/*any", func(c *gin.Context) {
			docs.SwaggerInfo.Host = c.Request.Host
			if config.App.Env == "production" {
				docs.SwaggerInfo.Schemes = []string{"https"}
			}
		}, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	healthRouter.RegisterRoutes(router)

	authed := router.Group("", authMiddleware.Handler())
	authRouter.RegisterRoutes(router, authed)
	catalogRouter.RegisterRoutes(authed)
	productionRouter.RegisterRoutes(authed)
	salaryRouter.RegisterRoutes(authed)
	reportRouter.RegisterRoutes(authed)

	pprof.Register(router)
	return router
}
