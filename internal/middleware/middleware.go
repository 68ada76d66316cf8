package middleware

import (
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/google/wire"
	"go.opentelemetry.io/otel/trace"
)

var ProviderSet = wire.NewSet(
	NewCors,
	NewTraceEntry,
	NewLogger,
	NewRecovery,
	NewResponse,
	NewAuth,
	NewIdempotency,
)

// skipObservability 這些路徑不做 tracing / log 包裝
func skipObservability(endpoint string) bool {
	return strings.HasPrefix(endpoint, "/swagger") ||
		strings.HasPrefix(endpoint, "/metrics") ||
		strings.HasPrefix(endpoint, "/version") ||
		strings.HasPrefix(endpoint, "/health-check") ||
		strings.HasPrefix(endpoint, "/debug/pprof")
}

// requestIDOf 有 trace 時沿用 traceID，否則產生 UUIDv7
func requestIDOf(span trace.Span) string {
	if sc := span.SpanContext(); sc.HasTraceID() {
		return sc.TraceID().String()
	}
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// sessionUserID Auth 之後才有值
func sessionUserID(c *gin.Context) string {
	if raw, ok := c.Get(core.ContextSessionKey); ok {
		if session, ok := raw.(core.Session); ok {
			return session.UserID()
		}
	}
	return ""
}
