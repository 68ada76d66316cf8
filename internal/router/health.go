package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"

	"github.com/gin-gonic/gin"
)

// HealthRouter 探針路由，不經過 auth
type HealthRouter struct {
	handler *handler.HealthHandler
}

func NewHealthRouter(h *handler.HealthHandler) *HealthRouter {
	return &HealthRouter{handler: h}
}

func (hr *HealthRouter) RegisterRoutes(r *gin.Engine) {
	r.GET("/health-check", hr.handler.Check)

	probes := r.Group("/health")
	probes.GET("/liveness", hr.handler.Liveness)
	probes.GET("/readiness", hr.handler.Readiness)
}
