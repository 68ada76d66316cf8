package repository

import (
	"context"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

type WorkerSalaryRepository struct {
	table[model.WorkerSalary]
}

func NewWorkerSalaryRepository(db *gorm.DB, tr *telemetry.Trace) *WorkerSalaryRepository {
	return &WorkerSalaryRepository{table: newTable[model.WorkerSalary](tr, db)}
}

// Upsert 衝突時不更新 paid / paid_date / paid_by
func (repository *WorkerSalaryRepository) Upsert(ctx context.Context, salary *model.WorkerSalary) error {
	model.Stamp(&salary.ID, &salary.CreatedAt, &salary.UpdatedAt)
	stored, err := repository.upsert(ctx, salary, assignmentKeyColumns, []string{
		"worker_name", "production_name", "operation_name", "date",
		"pieces_done", "amount_per_piece", "total_amount", "updated_at",
	}, keyCondition(salary.Key()))
	if err != nil {
		return err
	}
	*salary = *stored
	return nil
}

func (repository *WorkerSalaryRepository) GetByID(ctx context.Context, id string) (*model.WorkerSalary, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *WorkerSalaryRepository) GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerSalary, error) {
	return repository.first(ctx, keyCondition(key))
}

func (repository *WorkerSalaryRepository) List(ctx context.Context, query store.SalaryQuery) ([]*model.WorkerSalary, error) {
	return repository.find(ctx, func(tx *gorm.DB) *gorm.DB {
		tx = eq(tx, "worker_id", query.WorkerID)
		tx = eq(tx, "production_id", query.ProductionID)
		if query.Paid != nil {
			tx = tx.Where("paid = ?", *query.Paid)
		}
		return dateRange(tx, "date", query.DateFrom, query.DateTo)
	}, "date desc, created_at desc")
}

func (repository *WorkerSalaryRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error {
	return markPaid(ctx, repository.table, id, paidAt, paidBy)
}

func (repository *WorkerSalaryRepository) UpdateTotal(ctx context.Context, salary *model.WorkerSalary, totalAmount float64) (bool, error) {
	n, err := repository.updateWhere(ctx, map[string]any{
		"id":               salary.ID,
		"paid":             false,
		"pieces_done":      salary.PiecesDone,
		"amount_per_piece": salary.AmountPerPiece,
	}, map[string]any{
		"total_amount": totalAmount,
		"updated_at":   time.Now().UTC(),
	})
	return n > 0, err
}

type EmployeeSalaryRepository struct {
	table[model.EmployeeSalary]
}

func NewEmployeeSalaryRepository(db *gorm.DB, tr *telemetry.Trace) *EmployeeSalaryRepository {
	return &EmployeeSalaryRepository{table: newTable[model.EmployeeSalary](tr, db)}
}

func (repository *EmployeeSalaryRepository) Create(ctx context.Context, salary *model.EmployeeSalary) error {
	model.Stamp(&salary.ID, &salary.CreatedAt, &salary.UpdatedAt)
	return repository.insert(ctx, salary)
}

func (repository *EmployeeSalaryRepository) GetByID(ctx context.Context, id string) (*model.EmployeeSalary, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *EmployeeSalaryRepository) List(ctx context.Context, query store.EmployeeSalaryQuery) ([]*model.EmployeeSalary, error) {
	return repository.find(ctx, func(tx *gorm.DB) *gorm.DB {
		tx = eq(tx, "employee_id", query.EmployeeID)
		tx = eq(tx, "month", query.Month)
		if query.Paid != nil {
			tx = tx.Where("paid = ?", *query.Paid)
		}
		return tx
	}, "month desc, created_at desc")
}

func (repository *EmployeeSalaryRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error {
	return markPaid(ctx, repository.table, id, paidAt, paidBy)
}

// markPaid UPDATE ... WHERE id = ? AND paid = false
func markPaid[T any](ctx context.Context, t table[T], id string, paidAt time.Time, paidBy string) error {
	n, err := t.updateWhere(ctx, map[string]any{"id": id, "paid": false}, map[string]any{
		"paid":       true,
		"paid_date":  paidAt,
		"paid_by":    paidBy,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
