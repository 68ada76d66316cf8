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

type ProductionRepository struct {
	collection[model.Production]
}

func NewProductionRepository(db *mongo.Database, tr *telemetry.Trace) *ProductionRepository {
	return &ProductionRepository{
		collection: newCollection[model.Production](tr, db.Collection(string(core.CollectionProductions)), mongoModel.ProductionIndexes),
	}
}

func (repository *ProductionRepository) Create(ctx context.Context, production *model.Production) error {
	model.Stamp(&production.ID, &production.CreatedAt, &production.UpdatedAt)
	if production.Operations == nil {
		production.Operations = []model.ProductionOperation{}
	}
	return repository.insert(ctx, production)
}

func (repository *ProductionRepository) GetByID(ctx context.Context, id string) (*model.Production, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *ProductionRepository) List(ctx context.Context) ([]*model.Production, error) {
	return repository.find(ctx, bson.M{}, newestFirst)
}

func (repository *ProductionRepository) Update(ctx context.Context, production *model.Production) error {
	model.Touch(&production.UpdatedAt)
	return repository.replace(ctx, production.ID, production)
}

func (repository *ProductionRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx, bson.M{})
}
