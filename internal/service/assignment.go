package service

import (
	"context"
	"sort"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

const filterAll = "all"

type AssignmentService struct {
	trace       *telemetry.Trace
	assignments store.AssignmentStore
}

func NewAssignmentService(trace *telemetry.Trace, st *store.Store) *AssignmentService {
	return &AssignmentService{trace: trace, assignments: st.Assignments}
}

// List 取全部指派後在記憶體中篩選
func (s *AssignmentService) List(ctx context.Context, filter dto.AssignmentFilterDto) ([]*model.WorkerAssignment, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.assignments.List(ctx, store.AssignmentQuery{})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "ListAssignments")
	}
	return FilterAssignments(all, filter), nil
}

// Options 篩選下拉選單用的名稱，去重後排序
func (s *AssignmentService) Options(ctx context.Context) (*dto.AssignmentOptionsDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	all, err := s.assignments.List(ctx, store.AssignmentQuery{})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "AssignmentOptions")
	}
	workers, operations, productions := map[string]struct{}{}, map[string]struct{}{}, map[string]struct{}{}
	for _, a := range all {
		workers[a.WorkerName] = struct{}{}
		operations[a.OperationName] = struct{}{}
		productions[a.ProductionName] = struct{}{}
	}
	return &dto.AssignmentOptionsDto{
		Workers:     sortedKeys(workers),
		Operations:  sortedKeys(operations),
		Productions: sortedKeys(productions),
	}, nil
}

// ByDate 某日的所有指派與件數合計
func (s *AssignmentService) ByDate(ctx context.Context, date string) (*dto.DailyProductionDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	assignments, err := s.assignments.List(ctx, store.AssignmentQuery{Date: date})
	if err != nil {
		return nil, storeError(ctx, err, "assignment", "AssignmentsByDate")
	}
	resp := &dto.DailyProductionDto{Date: date, Assignments: assignments}
	if resp.Assignments == nil {
		resp.Assignments = []*model.WorkerAssignment{}
	}
	for _, a := range assignments {
		resp.TotalPieces += a.PiecesDone
	}
	return resp, nil
}

// FilterAssignments 各欄位等值且同時成立；空值或 all 不篩選。
// 不修改輸入，輸出依 date、createdAt 由新到舊。
func FilterAssignments(assignments []*model.WorkerAssignment, filter dto.AssignmentFilterDto) []*model.WorkerAssignment {
	resp := make([]*model.WorkerAssignment, 0, len(assignments))
	for _, a := range assignments {
		if matches(filter.Worker, a.WorkerName) &&
			matches(filter.Operation, a.OperationName) &&
			matches(filter.Production, a.ProductionName) &&
			matches(filter.Date, a.Date) {
			resp = append(resp, a)
		}
	}
	sort.SliceStable(resp, func(i, j int) bool {
		if resp[i].Date != resp[j].Date {
			return resp[i].Date > resp[j].Date
		}
		return resp[i].CreatedAt.After(resp[j].CreatedAt)
	})
	return resp
}

func matches(want, got string) bool {
	want = strings.TrimSpace(want)
	return want == "" || strings.EqualFold(want, filterAll) || want == got
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
