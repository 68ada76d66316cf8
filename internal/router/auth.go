package router

import (
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthRouter struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.Auth
	idempotency    *middleware.Idempotency
}

func NewAuthRouter(
	authHandler *handler.AuthHandler,
	authMiddleware *middleware.Auth,
	idempotency *middleware.Idempotency,
) *AuthRouter {
	return &AuthRouter{authHandler: authHandler, authMiddleware: authMiddleware, idempotency: idempotency}
}

// RegisterRoutes login 不需要 token，其餘掛在驗證後
func (ar *AuthRouter) RegisterRoutes(engine *gin.Engine, authed *gin.RouterGroup) {
	engine.POST("/auth/login", ar.authHandler.Login)

	auth := authed.Group("/auth")
	{
		auth.GET("/me", ar.authHandler.Me)

		supervisors := auth.Group("/supervisors", ar.authMiddleware.RequireAdmin())
		supervisors.POST("", ar.idempotency.Guard(), ar.authHandler.RegisterSupervisor)
		supervisors.GET("", ar.authHandler.ListSupervisors)
	}
}
