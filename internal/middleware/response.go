package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/model"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Response struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	metric            *telemetry.Metric
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewResponse(
	logger *zap.Logger,
	trace *telemetry.Trace,
	metric *telemetry.Metric,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Response {
	return &Response{
		logger:            logger,
		trace:             trace,
		metric:            metric,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// FormatHandler 把 handler 以 c.Set 放的 data/message 包成統一回應
func (middleware *Response) FormatHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipObservability(endpoint) {
			c.Next()
			return
		}

		requestTime := time.Now()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		} else {
			c.Set("requestDuration", requestTime)
		}

		c.Next()

		// 已有錯誤交由 Recovery 處理；已寫出（例如檔案下載）就不再包裝
		if len(c.Errors) > 0 || c.Writer.Written() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode >= http.StatusBadRequest {
			response.AbortWithError(c, cErr.MapHttpStatusToError(statusCode, "request error"))
			return
		}

		ctx, span, end := middleware.trace.WithSpan(c.Request.Context(), string(core.SpanResponseMiddleware))
		defer end(nil)

		data, _ := c.Get("data")
		if data == nil {
			data = map[string]any{}
		}
		message := "Request Success"
		if s, ok := c.Get("message"); ok {
			if str, ok := s.(string); ok && str != "" {
				message = str
			}
		}
		duration := time.Since(requestTime)
		requestID := requestIDOf(span)

		middleware.trace.ApplyTraceAttributes(span, core.TraceResponseMeta{
			Path:       c.Request.URL.Path,
			Method:     c.Request.Method,
			Status:     statusCode,
			Message:    message,
			Code:       cErr.SUCCESS,
			DurationMs: float64(duration.Milliseconds()),
			Data:       safePreviewJSON(data, 2000),
		})
		middleware.logger.Info("[Response] "+message,
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", statusCode),
			zap.Duration("duration", duration),
			zap.String("requestId", requestID),
		)

		jsonBytes, err := json.Marshal(response.Response{
			RequestID:   requestID,
			Code:        cErr.SUCCESS,
			Data:        data,
			Message:     "OK",
			Description: message,
		})
		if err != nil {
			response.AbortWithError(c, cErr.InternalServer("marshal response failed"))
			return
		}

		_ = middleware.fluentdRepository.LogResponse(ctx, model.ResponseLog{
			RequestID:  requestID,
			UserID:     sessionUserID(c),
			Code:       cErr.SUCCESS,
			StatusCode: statusCode,
			Body:       safePreviewJSON(data, 2000),
			ResponseTS: time.Now().UTC().Format("2006-01-02 15:04:05.999999 UTC"),
			Version:    middleware.config.App.Version,
		})
		middleware.metric.ResponseSucceeded(endpoint, strconv.Itoa(statusCode))

		// handler 可能設了 201
		c.Data(statusCode, "application/json; charset=utf-8", jsonBytes)
	}
}

// safePreviewJSON 序列化為 JSON 字串並限制長度
func safePreviewJSON(data any, max int) string {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("[marshal error: %v]", err)
	}
	out := string(b)
	if len(out) > max {
		return out[:max] + "…"
	}
	return out
}
