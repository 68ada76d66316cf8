package service

import (
	"context"
	"errors"
	"fmt"
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

type SalaryService struct {
	trace            *telemetry.Trace
	workerSalaries   store.WorkerSalaryStore
	employees        store.EmployeeStore
	employeeSalaries store.EmployeeSalaryStore
	now              func() time.Time
}

func NewSalaryService(trace *telemetry.Trace, st *store.Store) *SalaryService {
	return &SalaryService{
		trace:            trace,
		workerSalaries:   st.WorkerSalaries,
		employees:        st.Employees,
		employeeSalaries: st.EmployeeSalaries,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *SalaryService) ListWorkerSalaries(ctx context.Context, query dto.WorkerSalaryQueryDto) ([]*model.WorkerSalary, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	salaries, err := s.workerSalaries.List(ctx, store.SalaryQuery{
		WorkerID:     query.WorkerID,
		ProductionID: query.ProductionID,
		Paid:         query.Paid,
		DateFrom:     query.From,
		DateTo:       query.To,
	})
	if err != nil {
		return nil, storeError(ctx, err, "salary", "ListWorkerSalaries")
	}
	if salaries == nil {
		salaries = []*model.WorkerSalary{}
	}
	return salaries, nil
}

// PayWorkerSalary 已發放的不可再發放
func (s *SalaryService) PayWorkerSalary(ctx context.Context, session core.Session, id string) (*model.WorkerSalary, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	salary, err := s.workerSalaries.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "salary", "PayWorkerSalary")
	}
	if salary.Paid {
		return nil, cErr.AlreadyPaid("salary is already paid")
	}
	paidAt := s.now()
	if err := s.workerSalaries.MarkPaid(ctx, id, paidAt, session.Name()); err != nil {
		// 讀取後被別人發放
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.AlreadyPaid("salary is already paid")
		}
		return nil, storeError(ctx, err, "salary", "PayWorkerSalary")
	}
	salary.Paid = true
	salary.PaidDate = &paidAt
	salary.PaidBy = session.Name()
	return salary, nil
}

// RecalculateAll 未發放的薪資重算 totalAmount，只寫回有變動的。
// 寫入期間已發放或件數已變動的紀錄會被略過，不計入 updated。
func (s *SalaryService) RecalculateAll(ctx context.Context) (*dto.RecalculateResultDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	unpaid := false
	salaries, err := s.workerSalaries.List(ctx, store.SalaryQuery{Paid: &unpaid})
	if err != nil {
		return nil, storeError(ctx, err, "salary", "RecalculateSalaries")
	}
	resp := &dto.RecalculateResultDto{Scanned: len(salaries)}
	for _, salary := range salaries {
		total := money.Total(salary.PiecesDone, salary.AmountPerPiece)
		if total == salary.TotalAmount {
			continue
		}
		written, err := s.workerSalaries.UpdateTotal(ctx, salary, total)
		if err != nil {
			return resp, storeError(ctx, err, "salary", "RecalculateSalaries")
		}
		if written {
			salary.TotalAmount = total
			resp.Updated++
		}
	}
	return resp, nil
}

// ExportWorkerSalaries 回傳檔名與 xlsx 內容
func (s *SalaryService) ExportWorkerSalaries(ctx context.Context, query dto.WorkerSalaryQueryDto) (string, []byte, error) {
	salaries, err := s.ListWorkerSalaries(ctx, query)
	if err != nil {
		return "", nil, err
	}

	table := sheet.Table{
		Sheet: "Worker Salaries",
		Headers: []string{
			"Date", "Worker", "Production", "Operation",
			"Pieces", "Amount/Piece", "Total", "Paid", "Paid By",
		},
		Rows: make([][]any, 0, len(salaries)),
	}
	var pieces int64
	totals := make([]float64, 0, len(salaries))
	for _, salary := range salaries {
		paid := "No"
		if salary.Paid {
			paid = "Yes"
		}
		table.Rows = append(table.Rows, []any{
			salary.Date, salary.WorkerName, salary.ProductionName, salary.OperationName,
			salary.PiecesDone, salary.AmountPerPiece, salary.TotalAmount, paid, salary.PaidBy,
		})
		pieces += salary.PiecesDone
		totals = append(totals, salary.TotalAmount)
	}
	table.Totals = []any{"Total", "", "", "", pieces, "", money.Sum(totals...), "", ""}

	content, err := sheet.Write(table)
	if err != nil {
		return "", nil, cErr.InternalServer("export worker salaries error")
	}
	return fmt.Sprintf("worker-salaries-%s.xlsx", s.now().Format(core.DateLayout)), content, nil
}

// CreateEmployeeSalary 未帶金額時使用員工月薪
func (s *SalaryService) CreateEmployeeSalary(ctx context.Context, session core.Session, req *dto.CreateEmployeeSalaryDto) (*model.EmployeeSalary, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "CreateEmployeeSalary")
	}
	amount := employee.Salary
	if req.Amount != nil {
		amount = *req.Amount
	}
	salary := &model.EmployeeSalary{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		Month:        req.Month,
		Amount:       amount,
		CreatedBy:    session.UserID(),
	}
	if err := s.employeeSalaries.Create(ctx, salary); err != nil {
		return nil, storeError(ctx, err, "employee salary", "CreateEmployeeSalary")
	}
	return salary, nil
}

func (s *SalaryService) ListEmployeeSalaries(ctx context.Context, query dto.EmployeeSalaryQueryDto) ([]*model.EmployeeSalary, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	salaries, err := s.employeeSalaries.List(ctx, store.EmployeeSalaryQuery{
		EmployeeID: query.EmployeeID,
		Month:      query.Month,
		Paid:       query.Paid,
	})
	if err != nil {
		return nil, storeError(ctx, err, "employee salary", "ListEmployeeSalaries")
	}
	if salaries == nil {
		salaries = []*model.EmployeeSalary{}
	}
	return salaries, nil
}

func (s *SalaryService) PayEmployeeSalary(ctx context.Context, session core.Session, id string) (*model.EmployeeSalary, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	salary, err := s.employeeSalaries.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "employee salary", "PayEmployeeSalary")
	}
	if salary.Paid {
		return nil, cErr.AlreadyPaid("salary is already paid")
	}
	paidAt := s.now()
	if err := s.employeeSalaries.MarkPaid(ctx, id, paidAt, session.Name()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cErr.AlreadyPaid("salary is already paid")
		}
		return nil, storeError(ctx, err, "employee salary", "PayEmployeeSalary")
	}
	salary.Paid = true
	salary.PaidDate = &paidAt
	salary.PaidBy = session.Name()
	return salary, nil
}
