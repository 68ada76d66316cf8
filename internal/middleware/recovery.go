package middleware

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"
	"unicode/utf8"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/model"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	res "github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Recovery struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewRecovery(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Recovery {
	return &Recovery{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// ErrorHandler 攔截 panic 與 c.Errors，統一輸出錯誤格式
func (middleware *Recovery) ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		// panic recover 必須在 c.Next() 之前註冊
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			duration := time.Since(requestTime)
			ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
			requestID := requestIDOf(span)

			meta := core.TracePanicMeta{
				Path:       c.Request.URL.Path,
				Method:     c.Request.Method,
				ClientIP:   c.ClientIP(),
				UserAgent:  c.Request.UserAgent(),
				DurationMs: float64(duration.Milliseconds()),
				Message:    toSafeString(fmt.Sprint(rec)),
				Stack:      toSafeStack(debug.Stack()),
				Status:     http.StatusInternalServerError,
			}
			middleware.trace.ApplyTraceAttributes(span, meta)

			middleware.logger.Error("[PANIC] Recovered",
				zap.String("path", meta.Path),
				zap.String("method", meta.Method),
				zap.String("client_ip", meta.ClientIP),
				zap.Duration("duration", duration),
				zap.String("panic", meta.Message),
				zap.String("stacktrace", meta.Stack),
				zap.String("requestId", requestID),
			)

			err := cErr.InternalServer("unexpected panic")
			end(err)
			if !c.Writer.Written() {
				res.FailByErr(c, requestID, err)
			}
			middleware.logResponse(ctx, c, requestID, err)
			middleware.metric.ResponseFailed("panic")
			c.Abort()
		}()

		c.Next()

		// 非 panic 的 gin errors（若尚未回寫）
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		duration := time.Since(requestTime)
		appErr := firstAppError(c)
		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanRecoveryMiddleware))
		defer end(appErr.Cause())
		requestID := requestIDOf(span)

		middleware.trace.ApplyTraceAttributes(span, core.TraceErrorMeta{
			Code:       appErr.ErrorCode(),
			Message:    appErr.Error(),
			Detail:     appErr.ErrorDesc(),
			DurationMs: float64(duration.Milliseconds()),
			Status:     appErr.HttpCode(),
		})
		middleware.logger.Warn(appErr.Error(),
			zap.Int("code", appErr.ErrorCode()),
			zap.String("data", appErr.ErrorDesc()),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
			zap.NamedError("cause", appErr.Cause()),
		)
		res.FailByErr(c, requestID, appErr)
		middleware.logResponse(ctx, c, requestID, appErr)
		middleware.metric.ResponseFailed(appErr.Error())
		c.Abort()
	}
}

// firstAppError 第一個 *cErr.Error；都不是時視為未知內部錯誤
func firstAppError(c *gin.Context) *cErr.Error {
	for _, e := range c.Errors {
		if appErr, ok := e.Err.(*cErr.Error); ok {
			return appErr
		}
	}
	return cErr.New(http.StatusInternalServerError, cErr.INTERNAL_ERROR, "unknown-error", toSafeString(c.Errors.String()))
}

func (middleware *Recovery) logResponse(ctx context.Context, c *gin.Context, requestID string, appErr *cErr.Error) {
	_ = middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
		RequestID:  requestID,
		UserID:     sessionUserID(c),
		Code:       appErr.ErrorCode(),
		StatusCode: appErr.HttpCode(),
		Error:      appErr.ErrorDesc(),
		ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
		Version:    middleware.config.App.Version,
	})
}

func toSafeString(s string) string {
	const max = 8000
	if utf8.ValidString(s) {
		if len(s) > max {
			return s[:max] + "…"
		}
		return s
	}
	b := []byte(s)
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}

func toSafeStack(b []byte) string {
	const max = 16000
	if utf8.Valid(b) {
		if len(b) > max {
			return string(b[:max]) + "…"
		}
		return string(b)
	}
	if len(b) > max {
		b = b[:max]
	}
	return "b64:" + base64.StdEncoding.EncodeToString(b)
}
