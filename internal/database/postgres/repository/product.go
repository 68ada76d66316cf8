package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

type ProductRepository struct {
	table[model.Product]
}

func NewProductRepository(db *gorm.DB, tr *telemetry.Trace) *ProductRepository {
	return &ProductRepository{table: newTable[model.Product](tr, db)}
}

func (repository *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	model.Stamp(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	return repository.insert(ctx, product)
}

func (repository *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *ProductRepository) List(ctx context.Context) ([]*model.Product, error) {
	return repository.find(ctx, nil, newestFirst)
}

func (repository *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	model.Touch(&product.UpdatedAt)
	return repository.replace(ctx, product)
}

func (repository *ProductRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx)
}

type OperationRepository struct {
	table[model.Operation]
}

func NewOperationRepository(db *gorm.DB, tr *telemetry.Trace) *OperationRepository {
	return &OperationRepository{table: newTable[model.Operation](tr, db)}
}

func (repository *OperationRepository) Create(ctx context.Context, operation *model.Operation) error {
	model.Stamp(&operation.ID, &operation.CreatedAt, &operation.UpdatedAt)
	return repository.insert(ctx, operation)
}

func (repository *OperationRepository) GetByID(ctx context.Context, id string) (*model.Operation, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *OperationRepository) ListByProduct(ctx context.Context, productID string) ([]*model.Operation, error) {
	return repository.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("product_id = ?", productID)
	}, "created_at asc")
}

func (repository *OperationRepository) Update(ctx context.Context, operation *model.Operation) error {
	model.Touch(&operation.UpdatedAt)
	return repository.replace(ctx, operation)
}

func (repository *OperationRepository) Delete(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, id)
}

type ProductionRepository struct {
	table[model.Production]
}

func NewProductionRepository(db *gorm.DB, tr *telemetry.Trace) *ProductionRepository {
	return &ProductionRepository{table: newTable[model.Production](tr, db)}
}

func (repository *ProductionRepository) Create(ctx context.Context, production *model.Production) error {
	model.Stamp(&production.ID, &production.CreatedAt, &production.UpdatedAt)
	if production.Operations == nil {
		production.Operations = []model.ProductionOperation{}
	}
	return repository.insert(ctx, production)
}

func (repository *ProductionRepository) GetByID(ctx context.Context, id string) (*model.Production, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *ProductionRepository) List(ctx context.Context) ([]*model.Production, error) {
	return repository.find(ctx, nil, newestFirst)
}

func (repository *ProductionRepository) Update(ctx context.Context, production *model.Production) error {
	model.Touch(&production.UpdatedAt)
	return repository.replace(ctx, production)
}

func (repository *ProductionRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx)
}
