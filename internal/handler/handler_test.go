package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/database/client"
	fluentdRepo "github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	objectRepo "github.com/jainam30/mohil-enterprise/internal/database/objectstore/repository"
	pgRepo "github.com/jainam30/mohil-enterprise/internal/database/postgres/repository"
	redisRepo "github.com/jainam30/mohil-enterprise/internal/database/redis/repository"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/handler"
	"github.com/jainam30/mohil-enterprise/internal/middleware"
	"github.com/jainam30/mohil-enterprise/internal/router"
	"github.com/jainam30/mohil-enterprise/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

type testServer struct {
	engine          *gin.Engine
	store           *store.Store
	adminToken      string
	supervisorToken string
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, pgRepo.Migrate(db))
	return pgRepo.NewStore(db, nil)
}

// newTestServer 與 wireApp 相同的組裝，但 telemetry 為 nil、Redis 用 miniredis
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{
		App:  config.App{Env: "test", Name: "mohil-test", Version: "test"},
		Auth: config.Auth{JWTSecret: "handler-test-secret", Issuer: "mohil", TokenTTL: time.Hour},
	}
	log := zap.NewNop()
	st := newTestStore(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	redisClient := client.NewRedisClientFrom(rdb)

	logRepo := fluentdRepo.NewLogRepository(conf, &client.NoopClient{})
	images := objectRepo.NewImageRepository(conf, nil, &client.S3Client{})

	authService, err := service.NewAuthService(conf, nil, nil, st, redisRepo.NoopRateLimiter{})
	require.NoError(t, err)
	workerService := service.NewWorkerService(nil, st, images)
	employeeService := service.NewEmployeeService(nil, st, images)
	productService := service.NewProductService(nil, st, images)
	productionService := service.NewProductionService(nil, nil, st)
	assignmentService := service.NewAssignmentService(nil, st)
	salaryService := service.NewSalaryService(nil, st)
	reportService := service.NewReportService(nil, st)
	dashboardService := service.NewDashboardService(nil, st)
	healthService := service.NewHealthService(st)

	auth := middleware.NewAuth(log, nil, authService)
	idempotency := middleware.NewIdempotency(log, nil, conf, redisRepo.NewIdempotencyGuard(nil, redisClient))

	engine := router.NewRouter(
		conf,
		middleware.NewTraceEntry(nil, nil, conf),
		middleware.NewRecovery(log, nil, nil, conf, logRepo),
		middleware.NewCors(nil, conf),
		middleware.NewLogger(log, nil, conf, logRepo),
		middleware.NewResponse(log, nil, nil, conf, logRepo),
		auth,
		router.NewHealthRouter(handler.NewHealthHandler(healthService)),
		router.NewAuthRouter(handler.NewAuthHandler(nil, authService), auth, idempotency),
		router.NewCatalogRouter(
			handler.NewWorkerHandler(nil, workerService),
			handler.NewEmployeeHandler(nil, employeeService),
			handler.NewProductHandler(nil, productService),
			auth,
			idempotency,
		),
		router.NewProductionRouter(
			handler.NewProductionHandler(nil, productionService),
			handler.NewAssignmentHandler(nil, assignmentService),
			idempotency,
		),
		router.NewSalaryRouter(handler.NewSalaryHandler(nil, salaryService), auth, idempotency),
		router.NewReportRouter(handler.NewReportHandler(nil, reportService), handler.NewDashboardHandler(nil, dashboardService)),
	)

	ctx := context.Background()
	_, err = authService.CreateAdmin(ctx, &dto.CreateAdminDto{Name: "Mohil Admin", Email: "admin@mohil.in", Password: "secret123"})
	require.NoError(t, err)

	srv := &testServer{engine: engine, store: st}
	srv.adminToken = srv.login(t, "admin@mohil.in", "secret123")

	rec := srv.do(t, http.MethodPost, "/auth/supervisors", srv.adminToken, dto.RegisterSupervisorDto{
		Name: "Floor Supervisor", Email: "sup@mohil.in", Password: "secret123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	srv.supervisorToken = srv.login(t, "sup@mohil.in", "secret123")
	return srv
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/auth/login", "", dto.LoginDto{Email: email, Password: password}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res dto.LoginResponseDto
	decode(t, rec, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

// decode 解開統一回應並把 data 放進 out
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

func newWorkerBody(name, code string) dto.CreateWorkerDto {
	return dto.CreateWorkerDto{
		Name:              name,
		WorkerID:          code,
		Address:           "12 Ring Road, Surat",
		MobileNumber:      "9876543210",
		EmergencyNumber:   "9876500000",
		IDProof:           "AADHAAR-1234",
		BankAccountDetail: "SBI 00112233",
	}
}
