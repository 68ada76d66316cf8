package middleware

import (
	"net/http"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Cors struct {
	trace *telemetry.Trace
	conf  *config.Configuration
}

func NewCors(trace *telemetry.Trace, conf *config.Configuration) *Cors {
	return &Cors{trace: trace, conf: conf}
}

type corsMeta struct {
	AllowOrigins []string `trace:"http.cors.allow_origins"`
	AllowAll     bool     `trace:"http.cors.allow_all_origins"`
	AllowHeaders []string `trace:"http.cors.allow_headers"`
	AllowCreds   bool     `trace:"http.cors.allow_credentials"`
}

func (m *Cors) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		// 前端帶 Idempotency-Key；匯出需讀 Content-Disposition 取檔名
		AllowHeaders:  []string{"Content-Type", "Authorization", IdempotencyHeader},
		ExposeHeaders: []string{"Content-Disposition"},
	}
	var origins []string
	if m.conf != nil {
		origins = m.conf.App.CorsOrigins
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// CorsHandler 略過 tracing 的路徑仍要套 CORS，否則 preflight 會失敗
func (m *Cors) CorsHandler() gin.HandlerFunc {
	cfg := m.corsConfig()
	apply := cors.New(cfg)
	meta := corsMeta{
		AllowOrigins: cfg.AllowOrigins,
		AllowAll:     cfg.AllowAllOrigins,
		AllowHeaders: cfg.AllowHeaders,
		AllowCreds:   cfg.AllowCredentials,
	}

	return func(c *gin.Context) {
		if skipObservability(c.FullPath()) {
			apply(c)
			return
		}
		_, span, end := m.trace.WithSpan(c.Request.Context(), string(core.SpanCorsMiddleware))
		defer end(nil)
		m.trace.ApplyTraceAttributes(span, meta)
		apply(c)
	}
}
