package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReportService_ProductionReport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product, err := NewProductService(nil, st, nil).Create(ctx, adminSession, &dto.CreateProductDto{
		Name: "Summer Kurta", ProductID: "PRD-KUR", DesignNo: "D-01", Color: "Indigo",
		MaterialCost: 10, ThreadCost: 2, OtherCosts: 3,
		Operations: []dto.OperationDto{{Name: "Stitching", OperationID: "OP-STH", AmountPerPiece: 5}},
	})
	require.NoError(t, err)

	productions := NewProductionService(nil, nil, st)
	p, err := productions.Create(ctx, supervisorSession, &dto.CreateProductionDto{
		Name: "Summer Kurta", ProductionID: "PRD-001", PONumber: "PO-77", Color: "Indigo",
		TotalQuantity: 200, ProductID: product.ID,
		Operations: []dto.ProductionOperationDto{
			{Name: "Stitching", RatePerPiece: 5},
			{Name: "Ironing", RatePerPiece: 1.25},
		},
	})
	require.NoError(t, err)
	ramesh := seedWorker(t, st, "Ramesh", "W-001")
	suresh := seedWorker(t, st, "Suresh", "W-002")
	_, err = productions.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[0].ID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(100), Date: "2026-03-10"})
	require.NoError(t, err)
	_, err = productions.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[1].ID, &dto.AssignWorkerDto{WorkerID: suresh.ID, PiecesDone: int64Ptr(40), Date: "2026-02-20"})
	require.NoError(t, err)

	svc := NewReportService(nil, st)

	report, err := svc.ProductionReport(ctx, p.ID, dto.ProductionReportQueryDto{Date: "2026-03-14"})
	require.NoError(t, err)
	assert.Equal(t, 1250.0, report.OperationExpense)
	assert.Equal(t, 3000.0, report.RawMaterialCost)
	assert.Equal(t, 4250.0, report.TotalExpense)
	assert.Equal(t, 35.0, report.Percentage)
	require.Len(t, report.Operations, 2)
	assert.Equal(t, 1000.0, report.Operations[0].PlannedCost)
	assert.Equal(t, 500.0, report.Operations[0].AccruedCost)
	assert.Equal(t, 50.0, report.Operations[0].Percentage)

	assert.Equal(t, core.ReportPeriodMonthly, report.Window.Period)
	assert.Equal(t, "2026-03-01", report.Window.From)
	assert.Equal(t, "2026-03-14", report.Window.To)
	assert.Equal(t, int64(100), report.Window.Pieces)
	assert.Equal(t, 500.0, report.Window.OperationExpense)

	yearly, err := svc.ProductionReport(ctx, p.ID, dto.ProductionReportQueryDto{Period: "yearly", Date: "2026-03-14"})
	require.NoError(t, err)
	assert.Equal(t, int64(140), yearly.Window.Pieces)
	assert.Equal(t, 550.0, yearly.Window.OperationExpense)

	daily, err := svc.ProductionReport(ctx, p.ID, dto.ProductionReportQueryDto{Period: "daily", Date: "2026-03-14"})
	require.NoError(t, err)
	assert.Zero(t, daily.Window.Pieces)

	_, err = svc.ProductionReport(ctx, p.ID, dto.ProductionReportQueryDto{Period: "hourly"})
	assert.True(t, cErr.Is(err, cErr.BAD_REQUEST_BODY))
	_, err = svc.ProductionReport(ctx, model.NewID(), dto.ProductionReportQueryDto{})
	assert.True(t, cErr.Is(err, cErr.NOT_FOUND))

	filename, content, err := svc.ExportProductionReport(ctx, p.ID, dto.ProductionReportQueryDto{Date: "2026-03-14"})
	require.NoError(t, err)
	assert.Equal(t, "production-PRD-001.xlsx", filename)
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Production Report")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Total Expense", rows[5][0])
	assert.Equal(t, "4250", rows[5][2])
}

func TestReportService_WorkerPerformance(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	productions := NewProductionService(nil, nil, st)
	p := seedProduction(t, st)
	ramesh := seedWorker(t, st, "Ramesh", "W-001")
	suresh := seedWorker(t, st, "Suresh", "W-002")

	for _, a := range []struct {
		worker *model.Worker
		detail int
		pieces int64
		date   string
	}{
		{ramesh, 0, 100, "2026-03-10"},
		{ramesh, 1, 60, "2026-03-11"},
		{suresh, 0, 20, "2026-03-12"},
		{suresh, 1, 40, "2026-01-02"},
	} {
		_, err := productions.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[a.detail].ID, &dto.AssignWorkerDto{
			WorkerID: a.worker.ID, PiecesDone: int64Ptr(a.pieces), Date: a.date,
		})
		require.NoError(t, err)
	}

	svc := NewReportService(nil, st)
	all, err := svc.WorkerPerformance(ctx, dto.WorkerReportQueryDto{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, &dto.WorkerPerformanceDto{
		WorkerID: ramesh.ID, WorkerName: "Ramesh", TotalPiecesCompleted: 160, TotalOperations: 2, Earnings: 575,
	}, all[0])
	assert.Equal(t, 150.0, all[1].Earnings)

	march, err := svc.WorkerPerformance(ctx, dto.WorkerReportQueryDto{From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, int64(20), march[1].TotalPiecesCompleted)
	assert.Equal(t, 1, march[1].TotalOperations)
}

func TestDashboardService_Summary(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	productions := NewProductionService(nil, nil, st)
	p := seedProduction(t, st)
	ramesh := seedWorker(t, st, "Ramesh", "W-001")
	require.NoError(t, st.Employees.Create(ctx, &model.Employee{Name: "Priya", EmployeeID: "E-001", Salary: 100}))

	today := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	_, err := productions.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[0].ID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(200), Date: "2026-03-14"})
	require.NoError(t, err)
	_, err = productions.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[1].ID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(40), Date: "2026-03-13"})
	require.NoError(t, err)

	svc := NewDashboardService(nil, st)
	svc.now = func() time.Time { return today }

	summary, err := svc.Summary(ctx, supervisorSession)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Workers)
	assert.Equal(t, int64(1), summary.Productions)
	assert.Equal(t, int64(200), summary.TodayPieces)
	require.Len(t, summary.Progress, 1)
	assert.Equal(t, 60.0, summary.Progress[0].Percentage)
	assert.Nil(t, summary.Employees)
	assert.Nil(t, summary.PendingSalary)

	adminView, err := svc.Summary(ctx, adminSession)
	require.NoError(t, err)
	require.NotNil(t, adminView.Employees)
	assert.Equal(t, int64(1), *adminView.Employees)
	require.NotNil(t, adminView.PendingSalary)
	assert.Equal(t, 1050.0, *adminView.PendingSalary)
}
