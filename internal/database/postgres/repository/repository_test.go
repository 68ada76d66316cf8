package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func TestWorkerRepository(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	older := &model.Worker{Name: "Ramesh Kumar", WorkerID: "W-001", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, s.Workers.Create(ctx, older))
	assert.NotEmpty(t, older.ID)

	newer := &model.Worker{Name: "Suresh Patel", WorkerID: "W-002"}
	require.NoError(t, s.Workers.Create(ctx, newer))

	err := s.Workers.Create(ctx, &model.Worker{Name: "Copy", WorkerID: "W-001"})
	require.ErrorIs(t, err, store.ErrDuplicate)

	list, err := s.Workers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	older.Address = "12 Ring Road, Surat"
	older.MobileNumber = ""
	require.NoError(t, s.Workers.Update(ctx, older))
	found, err := s.Workers.GetByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "12 Ring Road, Surat", found.Address)

	err = s.Workers.Update(ctx, &model.Worker{ID: "missing", Name: "x", WorkerID: "W-404"})
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Workers.Delete(ctx, older.ID))
	require.ErrorIs(t, s.Workers.Delete(ctx, older.ID), store.ErrNotFound)
	_, err = s.Workers.GetByID(ctx, older.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.Workers.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProductionRepository_OperationsRoundTrip(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	production := &model.Production{
		Name:          "Summer Kurta",
		ProductionID:  "P-100",
		TotalQuantity: 500,
		Operations: []model.ProductionOperation{
			{ID: "op-1", Name: "Stitching", RatePerPiece: 5},
		},
	}
	require.NoError(t, s.Productions.Create(ctx, production))

	stored, err := s.Productions.GetByID(ctx, production.ID)
	require.NoError(t, err)
	require.Len(t, stored.Operations, 1)
	assert.Equal(t, 5.0, stored.Operations[0].RatePerPiece)

	stored.Operations[0].PiecesDone = 200
	stored.Operations[0].AssignedWorkerID = "w-1"
	require.NoError(t, s.Productions.Update(ctx, stored))

	again, err := s.Productions.GetByID(ctx, production.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), again.Operations[0].PiecesDone)
	assert.Equal(t, 0, again.FindOperation("op-1"))
}

func TestOperationRepository_ListByProduct(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	first := &model.Operation{ProductID: "prod-1", OperationID: "OP-1", Name: "Cutting", AmountPerPiece: 2, CreatedAt: time.Now().Add(-time.Minute)}
	second := &model.Operation{ProductID: "prod-1", OperationID: "OP-2", Name: "Stitching", AmountPerPiece: 5}
	other := &model.Operation{ProductID: "prod-2", OperationID: "OP-1", Name: "Cutting", AmountPerPiece: 2}
	for _, op := range []*model.Operation{first, second, other} {
		require.NoError(t, s.Operations.Create(ctx, op))
	}

	ops, err := s.Operations.ListByProduct(ctx, "prod-1")
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "OP-1", ops[0].OperationID)

	err = s.Operations.Create(ctx, &model.Operation{ProductID: "prod-1", OperationID: "OP-2", Name: "dup"})
	require.ErrorIs(t, err, store.ErrDuplicate)
}

func TestAssignmentRepository_Upsert(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	assignment := &model.WorkerAssignment{
		WorkerID: "w-1", WorkerName: "Ramesh Kumar",
		ProductionID: "p-1", ProductionName: "Summer Kurta",
		OperationID: "op-1", OperationName: "Stitching",
		PiecesDone: 150, Date: "2026-10-01",
	}
	require.NoError(t, s.Assignments.Upsert(ctx, assignment))
	firstID := assignment.ID

	again := &model.WorkerAssignment{
		WorkerID: "w-1", WorkerName: "Ramesh Kumar",
		ProductionID: "p-1", ProductionName: "Summer Kurta",
		OperationID: "op-1", OperationName: "Stitching",
		PiecesDone: 200, Date: "2026-10-02",
	}
	require.NoError(t, s.Assignments.Upsert(ctx, again))
	assert.Equal(t, firstID, again.ID)
	assert.Equal(t, int64(200), again.PiecesDone)

	list, err := s.Assignments.List(ctx, store.AssignmentQuery{WorkerID: "w-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = s.Assignments.List(ctx, store.AssignmentQuery{Date: "2026-10-01"})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = s.Assignments.List(ctx, store.AssignmentQuery{DateFrom: "2026-10-01", DateTo: "2026-10-31"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	found, err := s.Assignments.GetByKey(ctx, again.Key())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-02", found.Date)
}

func TestWorkerSalaryRepository_UpsertKeepsPaid(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	salary := &model.WorkerSalary{
		WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1",
		Date: "2026-10-01", PiecesDone: 200, AmountPerPiece: 5, TotalAmount: 1000,
	}
	require.NoError(t, s.WorkerSalaries.Upsert(ctx, salary))

	require.NoError(t, s.WorkerSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "admin-1"))
	require.ErrorIs(t, s.WorkerSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "admin-2"), store.ErrNotFound)

	recalculated := &model.WorkerSalary{
		WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1",
		Date: "2026-10-01", PiecesDone: 200, AmountPerPiece: 5, TotalAmount: 1000,
	}
	require.NoError(t, s.WorkerSalaries.Upsert(ctx, recalculated))
	assert.Equal(t, salary.ID, recalculated.ID)
	assert.True(t, recalculated.Paid)
	assert.Equal(t, "admin-1", recalculated.PaidBy)

	unpaid := false
	list, err := s.WorkerSalaries.List(ctx, store.SalaryQuery{Paid: &unpaid})
	require.NoError(t, err)
	assert.Empty(t, list)

	paid := true
	list, err = s.WorkerSalaries.List(ctx, store.SalaryQuery{Paid: &paid, WorkerID: "w-1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWorkerSalaryRepository_UpdateTotalGuards(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	salary := &model.WorkerSalary{
		WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1",
		Date: "2026-10-01", PiecesDone: 80, AmountPerPiece: 1.25, TotalAmount: 90,
	}
	require.NoError(t, s.WorkerSalaries.Upsert(ctx, salary))
	snapshot := *salary

	// 讀取後件數被新的指派改掉：不寫入
	require.NoError(t, s.WorkerSalaries.Upsert(ctx, &model.WorkerSalary{
		WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1",
		Date: "2026-10-01", PiecesDone: 120, AmountPerPiece: 1.25, TotalAmount: 150,
	}))
	written, err := s.WorkerSalaries.UpdateTotal(ctx, &snapshot, 100)
	require.NoError(t, err)
	assert.False(t, written)
	got, err := s.WorkerSalaries.GetByID(ctx, salary.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.TotalAmount)
	assert.Equal(t, int64(120), got.PiecesDone)

	// 件數相符時只改 totalAmount
	written, err = s.WorkerSalaries.UpdateTotal(ctx, got, 151)
	require.NoError(t, err)
	assert.True(t, written)

	// 已發放不可改
	require.NoError(t, s.WorkerSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "admin-1"))
	written, err = s.WorkerSalaries.UpdateTotal(ctx, got, 150)
	require.NoError(t, err)
	assert.False(t, written)

	got, err = s.WorkerSalaries.GetByID(ctx, salary.ID)
	require.NoError(t, err)
	assert.Equal(t, 151.0, got.TotalAmount)
	assert.True(t, got.Paid)
	assert.Equal(t, "admin-1", got.PaidBy)
	require.NotNil(t, got.PaidDate)
}

func TestEmployeeSalaryRepository(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	salary := &model.EmployeeSalary{EmployeeID: "e-1", EmployeeName: "Anita", Month: "2026-10", Amount: 18000}
	require.NoError(t, s.EmployeeSalaries.Create(ctx, salary))

	err := s.EmployeeSalaries.Create(ctx, &model.EmployeeSalary{EmployeeID: "e-1", Month: "2026-10", Amount: 1})
	require.ErrorIs(t, err, store.ErrDuplicate)

	list, err := s.EmployeeSalaries.List(ctx, store.EmployeeSalaryQuery{Month: "2026-10"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 18000.0, list[0].Amount)

	require.NoError(t, s.EmployeeSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "Mohil Admin"))
	require.ErrorIs(t, s.EmployeeSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "Mohil Admin"), store.ErrNotFound)
	got, err := s.EmployeeSalaries.GetByID(ctx, salary.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	assert.Equal(t, 18000.0, got.Amount)
}

func TestUserRepository(t *testing.T) {
	s := NewStore(setupTestDB(t), nil)
	ctx := context.Background()

	user := &model.User{Name: "Owner", Email: " Admin@Mohil.in ", PasswordHash: "hash", Role: core.RoleAdmin, Status: core.StatusActive}
	require.NoError(t, s.Users.Create(ctx, user))
	assert.Equal(t, "admin@mohil.in", user.Email)

	found, err := s.Users.GetByEmail(ctx, "ADMIN@mohil.in")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, core.RoleAdmin, found.Role)

	require.NoError(t, s.Users.Create(ctx, &model.User{Email: "sup@mohil.in", Role: core.RoleSupervisor}))
	supervisors, err := s.Users.ListByRole(ctx, core.RoleSupervisor)
	require.NoError(t, err)
	assert.Len(t, supervisors, 1)

	require.NoError(t, s.Ping(ctx))
}

func TestTableSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tr := &telemetry.Trace{TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), ServiceName: "test"}
	s := NewStore(setupTestDB(t), tr)
	ctx := context.Background()

	salary := &model.WorkerSalary{
		WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1",
		Date: "2026-10-01", PiecesDone: 10, AmountPerPiece: 5, TotalAmount: 50,
	}
	require.NoError(t, s.WorkerSalaries.Upsert(ctx, salary))
	require.NoError(t, s.WorkerSalaries.MarkPaid(ctx, salary.ID, time.Now().UTC(), "admin-1"))
	_, err := s.WorkerSalaries.GetByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	spans := map[string]sdktrace.ReadOnlySpan{}
	for _, span := range recorder.Ended() {
		spans[span.Name()] = span
	}
	for _, name := range []string{"sql.worker_salaries.upsert", "sql.worker_salaries.first", "sql.worker_salaries.update"} {
		require.Contains(t, spans, name)
	}

	update := spans["sql.worker_salaries.update"]
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range update.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "sqlite", attrs["db.system"].AsString())
	assert.Equal(t, "worker_salaries", attrs["db.collection"].AsString())
	assert.Equal(t, int64(1), attrs["db.modified_count"].AsInt64())

	// 查無資料不標成錯誤
	assert.Equal(t, codes.Unset, spans["sql.worker_salaries.first"].Status().Code)
}
