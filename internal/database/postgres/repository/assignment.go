package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

var assignmentKeyColumns = []string{"worker_id", "production_id", "operation_id"}

func keyCondition(key model.AssignmentKey) map[string]any {
	return map[string]any{
		"worker_id":     key.WorkerID,
		"production_id": key.ProductionID,
		"operation_id":  key.OperationID,
	}
}

type AssignmentRepository struct {
	table[model.WorkerAssignment]
}

func NewAssignmentRepository(db *gorm.DB, tr *telemetry.Trace) *AssignmentRepository {
	return &AssignmentRepository{table: newTable[model.WorkerAssignment](tr, db)}
}

func (repository *AssignmentRepository) Upsert(ctx context.Context, assignment *model.WorkerAssignment) error {
	model.Stamp(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	stored, err := repository.upsert(ctx, assignment, assignmentKeyColumns, []string{
		"worker_name", "production_name", "operation_name", "product_id", "pieces_done", "date", "updated_at",
	}, keyCondition(assignment.Key()))
	if err != nil {
		return err
	}
	*assignment = *stored
	return nil
}

func (repository *AssignmentRepository) GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerAssignment, error) {
	return repository.first(ctx, keyCondition(key))
}

func (repository *AssignmentRepository) List(ctx context.Context, query store.AssignmentQuery) ([]*model.WorkerAssignment, error) {
	return repository.find(ctx, func(tx *gorm.DB) *gorm.DB {
		tx = eq(tx, "worker_id", query.WorkerID)
		tx = eq(tx, "production_id", query.ProductionID)
		tx = eq(tx, "operation_id", query.OperationID)
		if query.Date != "" {
			return tx.Where("date = ?", query.Date)
		}
		return dateRange(tx, "date", query.DateFrom, query.DateTo)
	}, "date desc, created_at desc")
}
