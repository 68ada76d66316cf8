package middleware

import (
	"net"
	"strconv"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

type TraceEntry struct {
	trace  *telemetry.Trace
	metric *telemetry.Metric
	conf   *config.Configuration
}

func NewTraceEntry(trace *telemetry.Trace, metric *telemetry.Metric, conf *config.Configuration) *TraceEntry {
	return &TraceEntry{trace: trace, metric: metric, conf: conf}
}

// Handler 每個請求的 server span，下游以 core.ContextTraceKey 取得父 ctx
func (m *TraceEntry) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if skipObservability(route) {
			c.Next()
			return
		}

		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := m.trace.StartSpanForLayer(ctx, core.TraceSpanName(c.Request.Method+" "+route), trace.WithSpanKind(trace.SpanKindServer))
		c.Request = c.Request.WithContext(ctx)
		c.Set(core.ContextTraceKey, ctx)

		began := time.Now().UTC()
		if _, ok := c.Get("requestDuration"); !ok {
			c.Set("requestDuration", began)
		}

		meta := m.httpServerMeta(c, route)
		meta.SpanTraceID = span.SpanContext().TraceID().String()
		m.trace.ApplyTraceAttributes(span, meta)

		c.Next()

		status := c.Writer.Status()
		meta.HttpStatusCode = status
		m.trace.ApplyTraceAttributes(span, meta)

		var failure error
		if status >= 400 && len(c.Errors) > 0 {
			failure = c.Errors.Last().Err
		}
		m.metric.ObserveRequest(route, strconv.Itoa(status), time.Since(began).Seconds())
		m.trace.EndSpan(span, failure)
	}
}

func (m *TraceEntry) httpServerMeta(c *gin.Context, route string) *core.TraceHttpServerMeta {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	addr, port := splitPeer(c.Request.RemoteAddr)
	if addr == "" {
		addr = c.ClientIP()
	}
	return &core.TraceHttpServerMeta{
		ClientAddr:        c.ClientIP(),
		HttpRequestMethod: c.Request.Method,
		HttpRoute:         route,
		UrlPath:           c.Request.URL.Path,
		UrlScheme:         scheme,
		UserAgent:         c.Request.UserAgent(),
		ServerAddress:     m.conf.App.Name,
		NetworkPeerAddr:   addr,
		NetworkPeerPort:   port,
		NetworkProtoVer:   c.Request.Proto,
	}
}

// splitPeer RemoteAddr 解析失敗時回傳空字串
func splitPeer(remote string) (string, int) {
	host, port, err := net.SplitHostPort(remote)
	if err != nil {
		return "", 0
	}
	n, _ := strconv.Atoi(port)
	return host, n
}
