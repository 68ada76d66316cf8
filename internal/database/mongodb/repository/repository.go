package repository

import (
	"context"

	client "github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewStore 以 MongoDB 實作全部資源
func NewStore(mongoClient *client.MongoClient, tr *telemetry.Trace) *store.Store {
	return NewStoreFromDatabase(mongoClient.Database(), tr)
}

func NewStoreFromDatabase(db *mongo.Database, tr *telemetry.Trace) *store.Store {
	return &store.Store{
		Workers:          NewWorkerRepository(db, tr),
		Employees:        NewEmployeeRepository(db, tr),
		Products:         NewProductRepository(db, tr),
		Operations:       NewOperationRepository(db, tr),
		Productions:      NewProductionRepository(db, tr),
		Assignments:      NewAssignmentRepository(db, tr),
		WorkerSalaries:   NewWorkerSalaryRepository(db, tr),
		EmployeeSalaries: NewEmployeeSalaryRepository(db, tr),
		Users:            NewUserRepository(db, tr),
		Ping: func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		},
	}
}
