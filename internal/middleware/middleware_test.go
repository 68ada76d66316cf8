package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := bearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}

func TestRedactJSON(t *testing.T) {
	out := redactJSON([]byte(`{"email":"a@b.c","password":"hunter2"}`))
	var body map[string]string
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Equal(t, "a@b.c", body["email"])
	assert.NotEqual(t, "hunter2", body["password"])

	raw := []byte(`[1,2,3]`)
	assert.Equal(t, raw, redactJSON(raw))
}

func TestSkipObservability(t *testing.T) {
	assert.True(t, skipObservability("/swagger/*any"))
	assert.True(t, skipObservability("/debug/pprof/heap"))
	assert.False(t, skipObservability("/workers"))
}

func TestSplitPeer(t *testing.T) {
	host, port := splitPeer("10.0.0.7:51234")
	assert.Equal(t, "10.0.0.7", host)
	assert.Equal(t, 51234, port)

	host, port = splitPeer("garbage")
	assert.Empty(t, host)
	assert.Zero(t, port)
}

func TestRequestIDFallsBackToUUID(t *testing.T) {
	_, span := noop.NewTracerProvider().Tracer("test").Start(t.Context(), "x")
	id := requestIDOf(span)
	assert.Len(t, id, 36)
}

func newEnvelopeEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conf := &config.Configuration{App: config.App{Env: "test", Version: "test"}}
	logRepo := repository.NewLogRepository(conf, &client.NoopClient{})
	r := gin.New()
	r.Use(NewRecovery(zap.NewNop(), nil, nil, conf, logRepo).ErrorHandler())
	r.Use(NewResponse(zap.NewNop(), nil, nil, conf, logRepo).FormatHandler())
	return r
}

func TestResponseEnvelope(t *testing.T) {
	r := newEnvelopeEngine(t)
	r.POST("/things", func(c *gin.Context) { response.Create(c, gin.H{"id": "1"}) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/missing", func(c *gin.Context) { response.AbortWithError(c, cErr.NotFound("thing not found")) })
	r.GET("/file", func(c *gin.Context) { response.Attachment(c, "a.txt", "text/plain", []byte("hi")) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusCreated, rec.Code)
	var ok response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	assert.Equal(t, cErr.SUCCESS, ok.Code)
	assert.Equal(t, "Create Success", ok.Description)
	assert.NotEmpty(t, ok.RequestID)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var notFound response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notFound))
	assert.Equal(t, cErr.NOT_FOUND, notFound.Code)
	assert.Equal(t, "thing not found", notFound.Description)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var panicked response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &panicked))
	assert.Equal(t, cErr.INTERNAL_ERROR, panicked.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/file", nil))
	assert.Equal(t, "hi", rec.Body.String())
	assert.Equal(t, `attachment; filename="a.txt"`, rec.Header().Get("Content-Disposition"))
}

func TestCorsOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	preflight := func(conf *config.Configuration, origin string) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.Use(NewCors(nil, conf).CorsHandler())
		engine.GET("/workers", func(c *gin.Context) { c.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodOptions, "/workers", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight(&config.Configuration{}, "http://anything.test")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))

	conf := &config.Configuration{App: config.App{CorsOrigins: []string{"https://erp.mohil.in"}}}
	rec = preflight(conf, "https://erp.mohil.in")
	assert.Equal(t, "https://erp.mohil.in", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = preflight(conf, "https://evil.test")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
