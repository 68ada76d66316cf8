package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const IdempotencyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

type Idempotency struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	guard  store.IdempotencyGuard
	ttl    time.Duration
}

func NewIdempotency(logger *zap.Logger, trace *telemetry.Trace, conf *config.Configuration, guard store.IdempotencyGuard) *Idempotency {
	ttl := conf.Idempotency.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Idempotency{logger: logger, trace: trace, guard: guard, ttl: ttl}
}

// Guard 同一使用者重複送出同一個 Idempotency-Key 時回 40901；
// 請求失敗（status >= 400）會釋放 key 讓前端重試
func (m *Idempotency) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if key == "" {
			c.Next()
			return
		}
		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanIdempotencyMiddleware))
		userID := sessionUserID(c)
		meta := core.TraceIdempotencyMeta{UserID: userID, Key: key, Op: "reserve"}

		if len(key) > maxIdempotencyKeyLen {
			err := cErr.BadRequestHeaders("Idempotency-Key is too long")
			response.AbortWithError(c, err)
			end(err)
			return
		}

		reserved, err := m.guard.Reserve(ctx, userID, key, m.ttl)
		if err != nil {
			// Redis 異常不阻斷；唯一鍵仍會擋下重複資料
			m.logger.Warn("idempotency reserve failed", zap.Error(err), zap.String("key", key))
			end(err)
			c.Next()
			return
		}
		meta.Reserved = reserved
		m.trace.ApplyTraceAttributes(span, meta)
		if !reserved {
			dupErr := cErr.DuplicateSubmission("duplicate submission")
			response.AbortWithError(c, dupErr)
			end(dupErr)
			return
		}
		end(nil)

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			if err := m.guard.Release(c.Request.Context(), userID, key); err != nil {
				m.logger.Warn("idempotency release failed", zap.Error(err), zap.String("key", key))
			}
		}
	}
}
