package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/money"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

type ProductionService struct {
	trace       *telemetry.Trace
	metric      *telemetry.Metric
	productions store.ProductionStore
	products    store.ProductStore
	operations  store.OperationStore
	workers     store.WorkerStore
	assignments store.AssignmentStore
	salaries    store.WorkerSalaryStore
	now         func() time.Time
}

func NewProductionService(trace *telemetry.Trace, metric *telemetry.Metric, st *store.Store) *ProductionService {
	return &ProductionService{
		trace:       trace,
		metric:      metric,
		productions: st.Productions,
		products:    st.Products,
		operations:  st.Operations,
		workers:     st.Workers,
		assignments: st.Assignments,
		salaries:    st.WorkerSalaries,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create 未帶工序但有 productId 時複製產品工序；每道明細給新 id 且未完成
func (s *ProductionService) Create(ctx context.Context, session core.Session, req *dto.CreateProductionDto) (*model.Production, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	details, err := s.buildDetails(ctx, req.ProductID, req.Operations)
	if err != nil {
		return nil, err
	}
	production := &model.Production{
		Name:          strings.TrimSpace(req.Name),
		ProductionID:  strings.TrimSpace(req.ProductionID),
		PONumber:      req.PONumber,
		ProductID:     req.ProductID,
		Color:         req.Color,
		TotalFabric:   req.TotalFabric,
		Average:       req.Average,
		TotalQuantity: req.TotalQuantity,
		CutDate:       req.CutDate,
		Operations:    details,
		CreatedBy:     session.UserID(),
	}
	if err := s.productions.Create(ctx, production); err != nil {
		return nil, storeError(ctx, err, "production", "CreateProduction")
	}
	return production, nil
}

func (s *ProductionService) buildDetails(ctx context.Context, productID string, ops []dto.ProductionOperationDto) ([]model.ProductionOperation, error) {
	var product *model.Product
	if productID != "" {
		p, err := s.products.GetByID(ctx, productID)
		if err != nil {
			return nil, storeError(ctx, err, "product", "GetProduct")
		}
		product = p
	}

	details := make([]model.ProductionOperation, 0, len(ops))
	for _, op := range ops {
		details = append(details, newDetail(op))
	}
	if len(details) == 0 && product != nil {
		productOps, err := s.operations.ListByProduct(ctx, product.ID)
		if err != nil {
			return nil, storeError(ctx, err, "operation", "ListOperations")
		}
		for _, op := range productOps {
			details = append(details, model.ProductionOperation{
				ID:           model.NewID(),
				Name:         op.Name,
				OperationID:  op.ID,
				RatePerPiece: op.AmountPerPiece,
			})
		}
	}
	if len(details) == 0 {
		return nil, cErr.ValidateErr("at least one operation is required")
	}
	return details, nil
}

func newDetail(op dto.ProductionOperationDto) model.ProductionOperation {
	return model.ProductionOperation{
		ID:           model.NewID(),
		Name:         strings.TrimSpace(op.Name),
		OperationID:  op.OperationID,
		RatePerPiece: op.RatePerPiece,
	}
}

// List 依建立時間由新到舊；search 比對名稱、生產單號、PO 與顏色
func (s *ProductionService) List(ctx context.Context, search string) ([]*model.Production, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	productions, err := s.productions.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "production", "ListProductions")
	}
	resp := make([]*model.Production, 0, len(productions))
	for _, p := range productions {
		if containsFold(search, p.Name, p.ProductionID, p.PONumber, p.Color) {
			resp = append(resp, p)
		}
	}
	return resp, nil
}

func (s *ProductionService) Get(ctx context.Context, id string) (*model.Production, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	production, err := s.productions.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "production", "GetProduction")
	}
	return production, nil
}

// Update 只改表頭；帶 id 的工序保留指派狀態，其餘新增
func (s *ProductionService) Update(ctx context.Context, id string, req *dto.UpdateProductionDto) (*model.Production, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	production, err := s.productions.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "production", "UpdateProduction")
	}
	setIf(&production.Name, req.Name)
	setIf(&production.ProductionID, req.ProductionID)
	setIf(&production.PONumber, req.PONumber)
	setIf(&production.Color, req.Color)
	setIf(&production.TotalFabric, req.TotalFabric)
	setIf(&production.Average, req.Average)
	setIf(&production.CutDate, req.CutDate)
	if req.TotalQuantity != nil {
		for _, op := range production.Operations {
			if op.PiecesDone > *req.TotalQuantity {
				return nil, cErr.PiecesExceedTotal(fmt.Sprintf("operation %s already has %d pieces done", op.Name, op.PiecesDone))
			}
		}
		production.TotalQuantity = *req.TotalQuantity
	}

	for _, op := range req.Operations {
		if idx := production.FindOperation(op.ID); op.ID != "" && idx >= 0 {
			production.Operations[idx].Name = strings.TrimSpace(op.Name)
			production.Operations[idx].RatePerPiece = op.RatePerPiece
			if op.OperationID != "" {
				production.Operations[idx].OperationID = op.OperationID
			}
			continue
		}
		production.Operations = append(production.Operations, newDetail(op))
	}
	for i := range production.Operations {
		production.Operations[i].IsCompleted = production.Operations[i].PiecesDone >= production.TotalQuantity
	}

	if err := s.productions.Update(ctx, production); err != nil {
		return nil, storeError(ctx, err, "production", "UpdateProduction")
	}
	return production, nil
}

func (s *ProductionService) ListOperations(ctx context.Context, id string) ([]model.ProductionOperation, error) {
	production, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return production.Operations, nil
}

// AssignWorker 記錄工人在某道工序完成的件數，並推導指派與薪資。
// 依序寫入生產單、指派、薪資，三者之間沒有交易。
func (s *ProductionService) AssignWorker(
	ctx context.Context,
	session core.Session,
	productionID, detailID string,
	req *dto.AssignWorkerDto,
) (*dto.AssignmentResultDto, error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer end(nil)

	production, err := s.productions.GetByID(ctx, productionID)
	if err != nil {
		return nil, storeError(ctx, err, "production", "AssignWorker")
	}
	idx := production.FindOperation(detailID)
	if idx < 0 {
		return nil, cErr.NotFound("operation not found in production")
	}
	worker, err := s.workers.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, storeError(ctx, err, "worker", "AssignWorker")
	}
	pieces := *req.PiecesDone
	date := req.Date
	if date == "" {
		date = s.now().Format(core.DateLayout)
	}

	key := model.AssignmentKey{WorkerID: worker.ID, ProductionID: production.ID, OperationID: detailID}
	previous, err := s.salaries.GetByKey(ctx, key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		previous = nil
	case err != nil:
		return nil, storeError(ctx, err, "salary", "AssignWorker")
	case previous.Paid:
		return nil, cErr.AlreadyPaid("salary for this worker and operation is already paid")
	}

	others, err := s.assignments.List(ctx, store.AssignmentQuery{ProductionID: production.ID, OperationID: detailID})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "AssignWorker")
	}
	total := pieces
	for _, a := range others {
		if a.WorkerID != worker.ID {
			total += a.PiecesDone
		}
	}
	if total > production.TotalQuantity {
		return nil, cErr.PiecesExceedTotal(fmt.Sprintf("pieces done %d exceed total quantity %d", total, production.TotalQuantity))
	}

	detail := &production.Operations[idx]
	detail.PiecesDone = total
	detail.AssignedWorkerID = worker.ID
	detail.AssignedWorkerName = worker.Name
	detail.IsCompleted = total >= production.TotalQuantity
	if err := s.productions.Update(ctx, production); err != nil {
		return nil, storeError(ctx, err, "production", "AssignWorker")
	}

	assignment := &model.WorkerAssignment{
		WorkerID:       worker.ID,
		WorkerName:     worker.Name,
		ProductionID:   production.ID,
		ProductionName: production.Name,
		OperationID:    detailID,
		OperationName:  detail.Name,
		ProductID:      production.ProductID,
		PiecesDone:     pieces,
		Date:           date,
		CreatedBy:      session.UserID(),
	}
	if err := s.assignments.Upsert(ctx, assignment); err != nil {
		return nil, storeError(ctx, err, "assignment", "AssignWorker")
	}

	salary := &model.WorkerSalary{
		WorkerID:       worker.ID,
		WorkerName:     worker.Name,
		ProductionID:   production.ID,
		ProductionName: production.Name,
		OperationID:    detailID,
		OperationName:  detail.Name,
		Date:           date,
		PiecesDone:     pieces,
		AmountPerPiece: detail.RatePerPiece,
		TotalAmount:    money.Total(pieces, detail.RatePerPiece),
	}
	if err := s.salaries.Upsert(ctx, salary); err != nil {
		return nil, storeError(ctx, err, "salary", "AssignWorker")
	}

	accrued := salary.TotalAmount
	if previous != nil {
		accrued = money.Sum(salary.TotalAmount, -previous.TotalAmount)
	}
	s.metric.AssignmentRecorded(detail.Name, accrued)
	s.trace.ApplyTraceAttributes(span, core.TraceAssignmentMeta{
		ProductionID: production.ID,
		OperationID:  detailID,
		WorkerID:     worker.ID,
		PiecesDone:   pieces,
		Rate:         detail.RatePerPiece,
		TotalAmount:  salary.TotalAmount,
		Completed:    detail.IsCompleted,
	})

	return &dto.AssignmentResultDto{Production: production, Assignment: assignment, Salary: salary}, nil
}

func (s *ProductionService) Progress(ctx context.Context, id string) (*dto.ProductionProgressDto, error) {
	production, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProgressOf(production), nil
}

// ProgressOf 各工序完成百分比與整體平均
func ProgressOf(production *model.Production) *dto.ProductionProgressDto {
	resp := &dto.ProductionProgressDto{
		ID:           production.ID,
		ProductionID: production.ProductionID,
		Name:         production.Name,
		Operations:   make([]dto.OperationProgressDto, 0, len(production.Operations)),
	}
	percentages := make([]float64, 0, len(production.Operations))
	for _, op := range production.Operations {
		pct := money.Percentage(op.PiecesDone, production.TotalQuantity)
		percentages = append(percentages, pct)
		resp.Operations = append(resp.Operations, dto.OperationProgressDto{
			ID:              op.ID,
			OperationName:   op.Name,
			TotalPieces:     production.TotalQuantity,
			CompletedPieces: op.PiecesDone,
			Percentage:      pct,
			IsCompleted:     op.IsCompleted,
		})
	}
	resp.Percentage = money.Mean(percentages...)
	return resp
}
