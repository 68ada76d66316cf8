package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	mongoModel "github.com/jainam30/mohil-enterprise/internal/database/mongodb/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type EmployeeRepository struct {
	collection[model.Employee]
}

func NewEmployeeRepository(db *mongo.Database, tr *telemetry.Trace) *EmployeeRepository {
	return &EmployeeRepository{
		collection: newCollection[model.Employee](tr, db.Collection(string(core.CollectionEmployees)), mongoModel.EmployeeIndexes),
	}
}

func (repository *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	model.Stamp(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	return repository.insert(ctx, employee)
}

func (repository *EmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *EmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	return repository.find(ctx, bson.M{}, newestFirst)
}

func (repository *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	model.Touch(&employee.UpdatedAt)
	return repository.replace(ctx, employee.ID, employee)
}

func (repository *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx, bson.M{})
}
