package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/money"
	"github.com/jainam30/mohil-enterprise/internal/pkg/sheet"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

type ReportService struct {
	trace       *telemetry.Trace
	productions store.ProductionStore
	products    store.ProductStore
	assignments store.AssignmentStore
	salaries    store.WorkerSalaryStore
	now         func() time.Time
}

func NewReportService(trace *telemetry.Trace, st *store.Store) *ReportService {
	return &ReportService{
		trace:       trace,
		productions: st.Productions,
		products:    st.Products,
		assignments: st.Assignments,
		salaries:    st.WorkerSalaries,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ProductionReport 計畫工序成本、原物料成本與區間內實際累積
func (s *ReportService) ProductionReport(ctx context.Context, id string, query dto.ProductionReportQueryDto) (*dto.ProductionReportDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	period, err := core.ParseReportPeriod(query.Period)
	if err != nil {
		return nil, cErr.ValidateErr(err.Error())
	}
	windowEnd := s.now()
	if query.Date != "" {
		if windowEnd, err = time.Parse(core.DateLayout, query.Date); err != nil {
			return nil, cErr.ValidateErr("date must be YYYY-MM-DD")
		}
	}

	production, err := s.productions.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "production", "ProductionReport")
	}

	resp := &dto.ProductionReportDto{
		ID:            production.ID,
		ProductionID:  production.ProductionID,
		Name:          production.Name,
		PONumber:      production.PONumber,
		TotalQuantity: production.TotalQuantity,
		Operations:    make([]dto.OperationCostDto, 0, len(production.Operations)),
	}
	rates := make(map[string]float64, len(production.Operations))
	planned := make([]float64, 0, len(production.Operations))
	for _, op := range production.Operations {
		rates[op.ID] = op.RatePerPiece
		row := dto.OperationCostDto{
			ID:              op.ID,
			OperationName:   op.Name,
			RatePerPiece:    op.RatePerPiece,
			PlannedCost:     money.Total(production.TotalQuantity, op.RatePerPiece),
			CompletedPieces: op.PiecesDone,
			AccruedCost:     money.Total(op.PiecesDone, op.RatePerPiece),
			Percentage:      money.Percentage(op.PiecesDone, production.TotalQuantity),
		}
		planned = append(planned, row.PlannedCost)
		resp.Operations = append(resp.Operations, row)
	}
	resp.OperationExpense = money.Sum(planned...)
	resp.Percentage = ProgressOf(production).Percentage

	if production.ProductID != "" {
		product, err := s.products.GetByID(ctx, production.ProductID)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return nil, storeError(ctx, err, "product", "ProductionReport")
		default:
			resp.RawMaterialCost = money.Total(production.TotalQuantity, product.UnitRawMaterialCost())
		}
	}
	resp.TotalExpense = money.Sum(resp.OperationExpense, resp.RawMaterialCost)

	from, to := period.Window(windowEnd)
	assignments, err := s.assignments.List(ctx, store.AssignmentQuery{ProductionID: production.ID, DateFrom: from, DateTo: to})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "ProductionReport")
	}
	resp.Window = dto.ReportPeriodDto{Period: period, From: from, To: to}
	accrued := make([]float64, 0, len(assignments))
	for _, a := range assignments {
		resp.Window.Pieces += a.PiecesDone
		accrued = append(accrued, money.Total(a.PiecesDone, rates[a.OperationID]))
	}
	resp.Window.OperationExpense = money.Sum(accrued...)
	return resp, nil
}

func (s *ReportService) ExportProductionReport(ctx context.Context, id string, query dto.ProductionReportQueryDto) (string, []byte, error) {
	report, err := s.ProductionReport(ctx, id, query)
	if err != nil {
		return "", nil, err
	}

	table := sheet.Table{
		Sheet:   "Production Report",
		Headers: []string{"Operation", "Rate/Piece", "Planned Cost", "Completed Pieces", "Accrued Cost", "Progress %"},
		Rows:    make([][]any, 0, len(report.Operations)+3),
	}
	for _, op := range report.Operations {
		table.Rows = append(table.Rows, []any{
			op.OperationName, op.RatePerPiece, op.PlannedCost, op.CompletedPieces, op.AccruedCost, op.Percentage,
		})
	}
	table.Rows = append(table.Rows,
		[]any{"Raw Material", "", report.RawMaterialCost, "", "", ""},
		[]any{fmt.Sprintf("%s %s ~ %s", report.Window.Period, report.Window.From, report.Window.To), "", "", report.Window.Pieces, report.Window.OperationExpense, ""},
	)
	table.Totals = []any{"Total Expense", "", report.TotalExpense, "", "", report.Percentage}

	content, err := sheet.Write(table)
	if err != nil {
		return "", nil, cErr.InternalServer("export production report error")
	}
	return fmt.Sprintf("production-%s.xlsx", report.ProductionID), content, nil
}

// WorkerPerformance 依薪資紀錄彙總每位工人的件數、工序數與收入
func (s *ReportService) WorkerPerformance(ctx context.Context, query dto.WorkerReportQueryDto) ([]*dto.WorkerPerformanceDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	salaries, err := s.salaries.List(ctx, store.SalaryQuery{DateFrom: query.From, DateTo: query.To})
	if err != nil {
		return nil, storeError(ctx, err, "salary", "WorkerPerformance")
	}
	return summarizeWorkers(salaries), nil
}

func summarizeWorkers(salaries []*model.WorkerSalary) []*dto.WorkerPerformanceDto {
	byWorker := map[string]*dto.WorkerPerformanceDto{}
	operations := map[string]map[string]struct{}{}
	for _, salary := range salaries {
		row, ok := byWorker[salary.WorkerID]
		if !ok {
			row = &dto.WorkerPerformanceDto{WorkerID: salary.WorkerID, WorkerName: salary.WorkerName}
			byWorker[salary.WorkerID] = row
			operations[salary.WorkerID] = map[string]struct{}{}
		}
		row.TotalPiecesCompleted += salary.PiecesDone
		row.Earnings = money.Sum(row.Earnings, salary.TotalAmount)
		operations[salary.WorkerID][salary.ProductionID+"/"+salary.OperationID] = struct{}{}
	}

	resp := make([]*dto.WorkerPerformanceDto, 0, len(byWorker))
	for id, row := range byWorker {
		row.TotalOperations = len(operations[id])
		resp = append(resp, row)
	}
	sort.Slice(resp, func(i, j int) bool {
		if resp[i].Earnings != resp[j].Earnings {
			return resp[i].Earnings > resp[j].Earnings
		}
		return resp[i].WorkerName < resp[j].WorkerName
	})
	return resp
}
