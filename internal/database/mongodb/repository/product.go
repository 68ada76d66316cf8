package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	mongoModel "github.com/jainam30/mohil-enterprise/internal/database/mongodb/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection[model.Product]
}

func NewProductRepository(db *mongo.Database, tr *telemetry.Trace) *ProductRepository {
	return &ProductRepository{
		collection: newCollection[model.Product](tr, db.Collection(string(core.CollectionProducts)), mongoModel.ProductIndexes),
	}
}

func (repository *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	model.Stamp(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return repository.insert(ctx, product)
}

func (repository *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	return repository.find(ctx, bson.M{}, newestFirst)
}

func (repository *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	model.Touch(&product.UpdatedAt)
	return repository.replace(ctx, product.ID, product)
}

func (repository *ProductRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx, bson.M{})
}

type OperationRepository struct {
	collection[model.Operation]
}

func NewOperationRepository(db *mongo.Database, tr *telemetry.Trace) *OperationRepository {
	return &OperationRepository{
		collection: newCollection[model.Operation](tr, db.Collection(string(core.CollectionOperations)), mongoModel.OperationIndexes),
	}
}

func (repository *OperationRepository) Create(ctx context.Context, operation *model.Operation) error {
	model.Stamp(&operation.ID, &operation.CreatedAt, &operation.UpdatedAt)
	return repository.insert(ctx, operation)
}

func (repository *OperationRepository) GetByID(ctx context.Context, id string) (*model.Operation, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

// ListByProduct 依建立順序
func (repository *OperationRepository) ListByProduct(ctx context.Context, productID string) ([]*model.Operation, error) {
	return repository.find(ctx, bson.M{"productId": productID}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
}

func (repository *OperationRepository) Update(ctx context.Context, operation *model.Operation) error {
	model.Touch(&operation.UpdatedAt)
	return repository.replace(ctx, operation.ID, operation)
}

func (repository *OperationRepository) Delete(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, id)
}
