package middleware

import (
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Auth struct {
	logger      *zap.Logger
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuth(logger *zap.Logger, trace *telemetry.Trace, authService *service.AuthService) *Auth {
	return &Auth{logger: logger, trace: trace, authService: authService}
}

// Handler 驗證 Bearer token，成功後把 core.Session 放進 gin.Context
func (m *Auth) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanAuthMiddleware))
		meta := core.TraceAuthMiddlewareMeta{ClientIP: c.ClientIP()}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			meta.Status = "missing_token"
			m.trace.ApplyTraceAttributes(span, meta)
			err := cErr.Unauthorized("missing bearer token")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		session, err := m.authService.Authenticate(ctx, token)
		if err != nil {
			meta.Status = "invalid_token"
			m.trace.ApplyTraceAttributes(span, meta)
			response.AbortWithError(c, err)
			end(err)
			return
		}

		meta.UserID, meta.Role, meta.Status = session.UserID(), string(session.Role()), "success"
		m.trace.ApplyTraceAttributes(span, meta)
		c.Set(core.ContextSessionKey, session)
		end(nil)
		c.Next()
	}
}

// RequireAdmin 必須掛在 Handler 之後
func (m *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanRoleMiddleware))
		meta := core.TraceAuthMiddlewareMeta{UserID: sessionUserID(c)}

		raw, _ := c.Get(core.ContextSessionKey)
		session, ok := raw.(core.Session)
		if !ok || !session.IsAdmin() {
			meta.Status = "forbidden"
			m.trace.ApplyTraceAttributes(span, meta)
			err := cErr.Forbidden("admin role required")
			response.AbortWithError(c, err)
			end(err)
			return
		}
		meta.Role, meta.Status = string(session.Role()), "success"
		m.trace.ApplyTraceAttributes(span, meta)
		end(nil)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
