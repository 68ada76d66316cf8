package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestNewStoreFromDatabase(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("constructors", func(mt *mtest.T) {
		for i := 0; i < 9; i++ {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}
		s := NewStoreFromDatabase(mt.DB, nil)
		require.NotNil(t, s.Workers)
		require.NotNil(t, s.Assignments)
		require.NotNil(t, s.WorkerSalaries)
		require.NotNil(t, s.Ping)
	})
}

func TestWorkerRepository_MockOps(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("operations", func(mt *mtest.T) {
		coll := mt.DB.Collection("workers")
		repo := &WorkerRepository{collection: collection[model.Worker]{coll: coll}}
		ctx := context.Background()
		ns := coll.Database().Name() + "." + coll.Name()

		worker := &model.Worker{Name: "Ramesh Kumar", WorkerID: "W-001"}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(t, repo.Create(ctx, worker))
		assert.NotEmpty(t, worker.ID)
		assert.False(t, worker.CreatedAt.IsZero())

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: workers index: uniq_workerId",
		}))
		err := repo.Create(ctx, &model.Worker{Name: "Suresh", WorkerID: "W-001"})
		require.ErrorIs(t, err, store.ErrDuplicate)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: worker.ID},
			{Key: "name", Value: "Ramesh Kumar"},
			{Key: "workerId", Value: "W-001"},
			{Key: "createdAt", Value: time.Now().UTC()},
		}))
		found, err := repo.GetByID(ctx, worker.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ramesh Kumar", found.Name)
		assert.Equal(t, "W-001", found.WorkerID)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "w-2"}, {Key: "name", Value: "Suresh Patel"}},
			bson.D{{Key: "_id", Value: "w-1"}, {Key: "name", Value: "Ramesh Kumar"}},
		))
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "w-2", list[0].ID)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		worker.Address = "12 Ring Road, Surat"
		require.NoError(t, repo.Update(ctx, worker))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		require.ErrorIs(t, repo.Update(ctx, &model.Worker{ID: "missing"}), store.ErrNotFound)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(t, repo.Delete(ctx, worker.ID))

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		require.ErrorIs(t, repo.Delete(ctx, worker.ID), store.ErrNotFound)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestAssignmentRepository_Upsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upsert returns stored document", func(mt *mtest.T) {
		coll := mt.DB.Collection("production_operations")
		repo := &AssignmentRepository{collection: collection[model.WorkerAssignment]{coll: coll}}
		ctx := context.Background()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: "a-1"},
			{Key: "workerId", Value: "w-1"},
			{Key: "productionId", Value: "p-1"},
			{Key: "operationId", Value: "op-1"},
			{Key: "piecesDone", Value: int64(200)},
			{Key: "date", Value: "2024-03-01"},
		}}))
		assignment := &model.WorkerAssignment{WorkerID: "w-1", ProductionID: "p-1", OperationID: "op-1", PiecesDone: 200, Date: "2024-03-01"}
		require.NoError(t, repo.Upsert(ctx, assignment))
		assert.Equal(t, "a-1", assignment.ID)
		assert.Equal(t, int64(200), assignment.PiecesDone)
	})
}

func TestWorkerSalaryRepository_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list unpaid", func(mt *mtest.T) {
		coll := mt.DB.Collection("worker_salaries")
		repo := &WorkerSalaryRepository{collection: collection[model.WorkerSalary]{coll: coll}}
		ns := coll.Database().Name() + "." + coll.Name()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "s-1"},
			{Key: "workerId", Value: "w-1"},
			{Key: "piecesDone", Value: int64(200)},
			{Key: "amountPerPiece", Value: 5.0},
			{Key: "totalAmount", Value: 1000.0},
			{Key: "paid", Value: false},
		}))
		unpaid := false
		list, err := repo.List(context.Background(), store.SalaryQuery{WorkerID: "w-1", Paid: &unpaid})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 1000.0, list[0].TotalAmount)
		assert.False(t, list[0].Paid)
	})
}

func TestWorkerSalaryRepository_ConditionalUpdates(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("mark paid and update total", func(mt *mtest.T) {
		coll := mt.DB.Collection("worker_salaries")
		repo := &WorkerSalaryRepository{collection: collection[model.WorkerSalary]{coll: coll}}
		ctx := context.Background()
		salary := &model.WorkerSalary{ID: "s-1", PiecesDone: 200, AmountPerPiece: 5}

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		require.NoError(t, repo.MarkPaid(ctx, "s-1", time.Now().UTC(), "Mohil Admin"))

		// 已發放時條件不成立
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		assert.ErrorIs(t, repo.MarkPaid(ctx, "s-1", time.Now().UTC(), "Mohil Admin"), store.ErrNotFound)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))
		written, err := repo.UpdateTotal(ctx, salary, 1000)
		require.NoError(t, err)
		assert.False(t, written)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		written, err = repo.UpdateTotal(ctx, salary, 1000)
		require.NoError(t, err)
		assert.True(t, written)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "update", started.CommandName)
	})
}
