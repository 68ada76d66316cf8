package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	pgRepo "github.com/jainam30/mohil-enterprise/internal/database/postgres/repository"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	adminSession      = core.NewSession("user-admin", "Mohil Admin", "admin@mohil.in", core.RoleAdmin)
	supervisorSession = core.NewSession("user-sup", "Floor Supervisor", "sup@mohil.in", core.RoleSupervisor)
)

func init() {
	hashCost = bcrypt.MinCost
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

func seedWorker(t *testing.T, st *store.Store, name, code string) *model.Worker {
	t.Helper()
	w := &model.Worker{Name: name, WorkerID: code}
	require.NoError(t, st.Workers.Create(context.Background(), w))
	return w
}

// seedProduction 一張 200 件、兩道工序的生產單
func seedProduction(t *testing.T, st *store.Store) *model.Production {
	t.Helper()
	svc := NewProductionService(nil, nil, st)
	p, err := svc.Create(context.Background(), supervisorSession, &dto.CreateProductionDto{
		Name:          "Summer Kurta",
		ProductionID:  "PRD-001",
		PONumber:      "PO-77",
		Color:         "Indigo",
		TotalFabric:   500,
		Average:       2.5,
		TotalQuantity: 200,
		Operations: []dto.ProductionOperationDto{
			{Name: "Stitching", RatePerPiece: 5},
			{Name: "Ironing", RatePerPiece: 1.25},
		},
	})
	require.NoError(t, err)
	return p
}

func int64Ptr(v int64) *int64 { return &v }

func TestStoreError(t *testing.T) {
	ctx := context.Background()
	assert.NoError(t, storeError(ctx, nil, "worker", "Get"))
	assert.True(t, cErr.Is(storeError(ctx, store.ErrNotFound, "worker", "Get"), cErr.NOT_FOUND))
	assert.True(t, cErr.Is(storeError(ctx, fmt.Errorf("%w: uniq", store.ErrDuplicate), "worker", "Get"), cErr.CONFLICT))
}

func TestStoreError_KeepsCauseOnSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx, span := tp.Tracer("service-test").Start(context.Background(), "ListWorkers")

	driverErr := errors.New("connection reset by peer")
	err := storeError(ctx, driverErr, "worker", "ListWorkers")
	span.End()

	assert.True(t, cErr.Is(err, cErr.DATABASE_ERROR))
	assert.ErrorIs(t, err, driverErr)
	appErr := cErr.From(err)
	assert.Equal(t, "database ListWorkers error", appErr.ErrorDesc())
	assert.NotContains(t, appErr.ErrorDesc(), "connection reset")

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, containsFold("", "anything"))
	assert.True(t, containsFold("  kUr ", "Summer Kurta"))
	assert.True(t, containsFold("w-00", "Ramesh", "W-001"))
	assert.False(t, containsFold("suresh", "Ramesh", "W-001"))
}
