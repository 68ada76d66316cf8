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

type WorkerRepository struct {
	collection[model.Worker]
}

func NewWorkerRepository(db *mongo.Database, tr *telemetry.Trace) *WorkerRepository {
	return &WorkerRepository{
		collection: newCollection[model.Worker](tr, db.Collection(string(core.CollectionWorkers)), mongoModel.WorkerIndexes),
	}
}

func (repository *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	model.Stamp(&worker.ID, &worker.CreatedAt, &worker.UpdatedAt)
	return repository.insert(ctx, worker)
}

func (repository *WorkerRepository) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *WorkerRepository) List(ctx context.Context) ([]*model.Worker, error) {
	return repository.find(ctx, bson.M{}, newestFirst)
}

func (repository *WorkerRepository) Update(ctx context.Context, worker *model.Worker) error {
	model.Touch(&worker.UpdatedAt)
	return repository.replace(ctx, worker.ID, worker)
}

func (repository *WorkerRepository) Delete(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, id)
}

func (repository *WorkerRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx, bson.M{})
}
