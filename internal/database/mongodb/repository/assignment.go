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

type AssignmentRepository struct {
	collection[model.WorkerAssignment]
}

func NewAssignmentRepository(db *mongo.Database, tr *telemetry.Trace) *AssignmentRepository {
	return &AssignmentRepository{
		collection: newCollection[model.WorkerAssignment](tr, db.Collection(string(core.CollectionProductionOperations)), mongoModel.AssignmentIndexes),
	}
}

func keyFilter(key model.AssignmentKey) bson.M {
	return bson.M{
		"workerId":     key.WorkerID,
		"productionId": key.ProductionID,
		"operationId":  key.OperationID,
	}
}

func (repository *AssignmentRepository) Upsert(ctx context.Context, assignment *model.WorkerAssignment) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	id := assignment.ID
	if id == "" {
		id = model.NewID()
	}
	update := bson.M{
		"$set": bson.M{
			"workerName":     assignment.WorkerName,
			"productionName": assignment.ProductionName,
			"operationName":  assignment.OperationName,
			"productId":      assignment.ProductID,
			"piecesDone":     assignment.PiecesDone,
			"date":           assignment.Date,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"_id":       id,
			"createdBy": assignment.CreatedBy,
			"createdAt": now,
		},
	}
	stored, err := repository.upsert(ctx, keyFilter(assignment.Key()), update)
	if err != nil {
		return err
	}
	*assignment = *stored
	return nil
}

func (repository *AssignmentRepository) GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerAssignment, error) {
	return repository.findOne(ctx, keyFilter(key))
}

func (repository *AssignmentRepository) List(ctx context.Context, query store.AssignmentQuery) ([]*model.WorkerAssignment, error) {
	filter := bson.M{}
	eq(filter, "workerId", query.WorkerID)
	eq(filter, "productionId", query.ProductionID)
	eq(filter, "operationId", query.OperationID)
	if query.Date != "" {
		filter["date"] = query.Date
	} else {
		dateRange(filter, "date", query.DateFrom, query.DateTo)
	}
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	return repository.find(ctx, filter, sort)
}
