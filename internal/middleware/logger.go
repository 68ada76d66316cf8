package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/model"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const redacted = "[REDACTED]"

// 不寫入 log 的 header 與 body 欄位
var (
	sensitiveHeaders = map[string]struct{}{"authorization": {}, "cookie": {}}
	sensitiveFields  = map[string]struct{}{"password": {}}
)

type Logger struct {
	logger            *zap.Logger
	trace             *telemetry.Trace
	config            *config.Configuration
	fluentdRepository *repository.LogRepository
}

func NewLogger(
	logger *zap.Logger,
	trace *telemetry.Trace,
	config *config.Configuration,
	fluentdRepository *repository.LogRepository,
) *Logger {
	return &Logger{
		logger:            logger,
		trace:             trace,
		config:            config,
		fluentdRepository: fluentdRepository,
	}
}

// LoggerHandler 記錄每個請求（二進位 body 不讀；文字 body 截斷並遮蔽密碼）
func (m *Logger) LoggerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if skipObservability(endpoint) {
			c.Next()
			return
		}

		ctx, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanLoggerMiddleware))

		requestTime := time.Now().UTC()
		if startTime, exists := c.Get("requestDuration"); exists {
			if t, ok := startTime.(time.Time); ok {
				requestTime = t
			}
		}

		mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
		var bodyRaw string
		switch {
		case isBinaryContent(mediaType):
			bodyRaw = fmt.Sprintf("(binary %s, %d bytes)", mediaType, c.Request.ContentLength)
		case c.Request.Body != nil && c.Request.ContentLength != 0:
			// 讀完整 body 後回填，確保下游仍可讀取
			data, _ := io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(data))
			if strings.HasPrefix(mediaType, "application/json") {
				data = redactJSON(data)
			}
			bodyRaw = toSafePreview(data, 2000)
		}

		headerMap := make(map[string]string, len(c.Request.Header))
		for k, v := range c.Request.Header {
			lk := strings.ToLower(k)
			if _, ok := sensitiveHeaders[lk]; ok {
				headerMap[lk] = redacted
				continue
			}
			headerMap[lk] = strings.Join(v, ",")
		}
		paramsMap := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			paramsMap[p.Key] = p.Value
		}

		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		traceID := span.SpanContext().TraceID()
		spanID := span.SpanContext().SpanID()

		m.trace.ApplyTraceAttributes(span, core.LoggerRequestMeta{
			Method:     method,
			Path:       path,
			FullPath:   endpoint,
			Query:      query,
			Body:       bodyRaw,
			Scheme:     c.Request.URL.Scheme,
			Host:       c.Request.Host,
			UserAgent:  c.Request.UserAgent(),
			ContentLen: c.Request.ContentLength,
			Proto:      c.Request.Proto,
			ClientIP:   c.ClientIP(),
			Headers:    headerMap,
			Params:     paramsMap,
		})

		logFields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Any("headers", headerMap),
		}
		if query != "" {
			logFields = append(logFields, zap.String("query", query))
		}
		if len(paramsMap) > 0 {
			logFields = append(logFields, zap.Any("params", paramsMap))
		}
		if bodyRaw != "" {
			logFields = append(logFields, zap.String("body", bodyRaw))
		}
		logFields = append(logFields,
			zap.String("spanId", fmt.Sprintf("%x", spanID[:])),
			zap.String("traceId", fmt.Sprintf("%x", traceID[:])),
		)
		m.logger.Info("[Request] logging middleware message", logFields...)

		_ = m.fluentdRepository.LogRequest(ctx, model.RequestLog{
			RequestID: fmt.Sprintf("%x", traceID[:]),
			Method:    method,
			Path:      path,
			RequestTS: requestTime.Format("2006-01-02 15:04:05.999999 UTC"),
			Body:      bodyRaw,
			IPHash:    hashIP(c.ClientIP()),
			UserAgent: c.Request.UserAgent(),
			Version:   m.config.App.Version,
		})
		end(nil)
		c.Next()
	}
}

// redactJSON 遮蔽最外層的敏感欄位；非物件原樣回傳
func redactJSON(data []byte) []byte {
	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		return data
	}
	changed := false
	for k := range body {
		if _, ok := sensitiveFields[strings.ToLower(k)]; ok {
			body[k] = redacted
			changed = true
		}
	}
	if !changed {
		return data
	}
	out, err := json.Marshal(body)
	if err != nil {
		return data
	}
	return out
}

func hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

// 僅對文字內容做安全預覽：UTF-8 直接截斷；非 UTF-8 以 Base64 表示
func toSafePreview(b []byte, max int) string {
	if len(b) == 0 {
		return ""
	}
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

func isBinaryContent(mediaType string) bool {
	return strings.HasPrefix(mediaType, "multipart/") ||
		strings.HasPrefix(mediaType, "image/") ||
		mediaType == "application/octet-stream"
}
