package service

import (
	"context"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/money"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

type DashboardService struct {
	trace *telemetry.Trace
	store *store.Store
	now   func() time.Time
}

func NewDashboardService(trace *telemetry.Trace, st *store.Store) *DashboardService {
	return &DashboardService{trace: trace, store: st, now: func() time.Time { return time.Now().UTC() }}
}

// Summary 員工數與待發薪資只給 admin
func (s *DashboardService) Summary(ctx context.Context, session core.Session) (*dto.DashboardDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	var (
		resp dto.DashboardDto
		err  error
	)
	if resp.Workers, err = s.store.Workers.Count(ctx); err != nil {
		return nil, storeError(ctx, err, "worker", "Dashboard")
	}
	if resp.Products, err = s.store.Products.Count(ctx); err != nil {
		return nil, storeError(ctx, err, "product", "Dashboard")
	}
	if resp.Productions, err = s.store.Productions.Count(ctx); err != nil {
		return nil, storeError(ctx, err, "production", "Dashboard")
	}

	today, err := s.store.Assignments.List(ctx, store.AssignmentQuery{Date: s.now().Format(core.DateLayout)})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "Dashboard")
	}
	for _, a := range today {
		resp.TodayPieces += a.PiecesDone
	}

	productions, err := s.store.Productions.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "production", "Dashboard")
	}
	resp.Progress = make([]dto.ProductionPercentageDto, 0, len(productions))
	for _, p := range productions {
		resp.Progress = append(resp.Progress, dto.ProductionPercentageDto{
			ID:         p.ID,
			Name:       p.Name,
			Percentage: ProgressOf(p).Percentage,
		})
	}

	if !session.IsAdmin() {
		return &resp, nil
	}
	employees, err := s.store.Employees.Count(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "Dashboard")
	}
	unpaid := false
	pending, err := s.store.WorkerSalaries.List(ctx, store.SalaryQuery{Paid: &unpaid})
	if err != nil {
		return nil, storeError(ctx, err, "salary", "Dashboard")
	}
	amounts := make([]float64, 0, len(pending))
	for _, salary := range pending {
		amounts = append(amounts, salary.TotalAmount)
	}
	pendingAmount := money.Sum(amounts...)
	resp.Employees = &employees
	resp.PendingSalary = &pendingAmount
	return &resp, nil
}
