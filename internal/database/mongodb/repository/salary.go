package repository

import (
	"context"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	mongoModel "github.com/jainam30/mohil-enterprise/internal/database/mongodb/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkerSalaryRepository struct {
	collection[model.WorkerSalary]
}

func NewWorkerSalaryRepository(db *mongo.Database, tr *telemetry.Trace) *WorkerSalaryRepository {
	return &WorkerSalaryRepository{
		collection: newCollection[model.WorkerSalary](tr, db.Collection(string(core.CollectionWorkerSalaries)), mongoModel.WorkerSalaryIndexes),
	}
}

// Upsert paid / paidDate / paidBy 只在新增時寫入
func (repository *WorkerSalaryRepository) Upsert(ctx context.Context, salary *model.WorkerSalary) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	id := salary.ID
	if id == "" {
		id = model.NewID()
	}
	update := bson.M{
		"$set": bson.M{
			"workerName":     salary.WorkerName,
			"productionName": salary.ProductionName,
			"operationName":  salary.OperationName,
			"date":           salary.Date,
			"piecesDone":     salary.PiecesDone,
			"amountPerPiece": salary.AmountPerPiece,
			"totalAmount":    salary.TotalAmount,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"_id":       id,
			"paid":      false,
			"createdAt": now,
		},
	}
	stored, err := repository.upsert(ctx, keyFilter(salary.Key()), update)
	if err != nil {
		return err
	}
	*salary = *stored
	return nil
}

func (repository *WorkerSalaryRepository) GetByID(ctx context.Context, id string) (*model.WorkerSalary, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *WorkerSalaryRepository) GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerSalary, error) {
	return repository.findOne(ctx, keyFilter(key))
}

func (repository *WorkerSalaryRepository) List(ctx context.Context, query store.SalaryQuery) ([]*model.WorkerSalary, error) {
	filter := bson.M{}
	eq(filter, "workerId", query.WorkerID)
	eq(filter, "productionId", query.ProductionID)
	if query.Paid != nil {
		filter["paid"] = *query.Paid
	}
	dateRange(filter, "date", query.DateFrom, query.DateTo)
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	return repository.find(ctx, filter, sort)
}

func (repository *WorkerSalaryRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error {
	return markPaid(ctx, repository.collection, id, paidAt, paidBy)
}

func (repository *WorkerSalaryRepository) UpdateTotal(ctx context.Context, salary *model.WorkerSalary, totalAmount float64) (bool, error) {
	matched, err := repository.updateWhere(ctx, bson.M{
		"_id":            salary.ID,
		"paid":           false,
		"piecesDone":     salary.PiecesDone,
		"amountPerPiece": salary.AmountPerPiece,
	}, bson.M{
		"totalAmount": totalAmount,
		"updatedAt":   time.Now().UTC().Truncate(time.Millisecond),
	})
	return matched > 0, err
}

type EmployeeSalaryRepository struct {
	collection[model.EmployeeSalary]
}

func NewEmployeeSalaryRepository(db *mongo.Database, tr *telemetry.Trace) *EmployeeSalaryRepository {
	return &EmployeeSalaryRepository{
		collection: newCollection[model.EmployeeSalary](tr, db.Collection(string(core.CollectionEmployeeSalaries)), mongoModel.EmployeeSalaryIndexes),
	}
}

func (repository *EmployeeSalaryRepository) Create(ctx context.Context, salary *model.EmployeeSalary) error {
	model.Stamp(&salary.ID, &salary.CreatedAt, &salary.UpdatedAt)
	return repository.insert(ctx, salary)
}

func (repository *EmployeeSalaryRepository) GetByID(ctx context.Context, id string) (*model.EmployeeSalary, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *EmployeeSalaryRepository) List(ctx context.Context, query store.EmployeeSalaryQuery) ([]*model.EmployeeSalary, error) {
	filter := bson.M{}
	eq(filter, "employeeId", query.EmployeeID)
	eq(filter, "month", query.Month)
	if query.Paid != nil {
		filter["paid"] = *query.Paid
	}
	sort := options.Find().SetSort(bson.D{{Key: "month", Value: -1}, {Key: "createdAt", Value: -1}})
	return repository.find(ctx, filter, sort)
}

func (repository *EmployeeSalaryRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error {
	return markPaid(ctx, repository.collection, id, paidAt, paidBy)
}

// markPaid 以 paid=false 為條件，避免覆寫同時寫入的其他欄位
func markPaid[T any](ctx context.Context, c collection[T], id string, paidAt time.Time, paidBy string) error {
	matched, err := c.updateWhere(ctx, bson.M{"_id": id, "paid": false}, bson.M{
		"paid":      true,
		"paidDate":  paidAt,
		"paidBy":    paidBy,
		"updatedAt": time.Now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return store.ErrNotFound
	}
	return nil
}
