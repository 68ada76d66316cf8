package service

import (
	"context"
	"testing"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionService_Create(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := NewProductionService(nil, nil, st)

	t.Run("details get fresh ids and start incomplete", func(t *testing.T) {
		p := seedProduction(t, st)
		require.Len(t, p.Operations, 2)
		assert.NotEmpty(t, p.Operations[0].ID)
		assert.NotEqual(t, p.Operations[0].ID, p.Operations[1].ID)
		for _, op := range p.Operations {
			assert.False(t, op.IsCompleted)
			assert.Zero(t, op.PiecesDone)
		}
		assert.Equal(t, supervisorSession.UserID(), p.CreatedBy)
	})

	t.Run("copies product operations when none supplied", func(t *testing.T) {
		products := NewProductService(nil, st, nil)
		product, err := products.Create(ctx, adminSession, &dto.CreateProductDto{
			Name: "Anarkali", ProductID: "PRD-ANK", DesignNo: "D-12", Color: "Red",
			Operations: []dto.OperationDto{
				{Name: "Cutting", OperationID: "OP-CUT", AmountPerPiece: 2},
				{Name: "Stitching", OperationID: "OP-STH", AmountPerPiece: 6.5},
			},
		})
		require.NoError(t, err)

		p, err := svc.Create(ctx, supervisorSession, &dto.CreateProductionDto{
			Name: "Anarkali Batch", ProductionID: "PRD-ANK-1", PONumber: "PO-1", Color: "Red",
			TotalQuantity: 50, ProductID: product.ID,
		})
		require.NoError(t, err)
		require.Len(t, p.Operations, 2)
		names := []string{p.Operations[0].Name, p.Operations[1].Name}
		assert.ElementsMatch(t, []string{"Cutting", "Stitching"}, names)
		for _, op := range p.Operations {
			assert.NotEmpty(t, op.OperationID)
			if op.Name == "Stitching" {
				assert.Equal(t, 6.5, op.RatePerPiece)
			}
		}
	})

	t.Run("requires operations or a product", func(t *testing.T) {
		_, err := svc.Create(ctx, supervisorSession, &dto.CreateProductionDto{
			Name: "Empty", ProductionID: "PRD-EMPTY", PONumber: "PO-2", Color: "Blue", TotalQuantity: 10,
		})
		assert.True(t, cErr.Is(err, cErr.BAD_REQUEST_BODY))
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Create(ctx, supervisorSession, &dto.CreateProductionDto{
			Name: "Ghost", ProductionID: "PRD-GHOST", PONumber: "PO-3", Color: "Blue", TotalQuantity: 10,
			ProductID: model.NewID(),
		})
		assert.True(t, cErr.Is(err, cErr.NOT_FOUND))
	})
}

func TestProductionService_AssignWorker(t *testing.T) {
	ctx := context.Background()

	t.Run("records assignment and salary", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewProductionService(nil, nil, st)
		p := seedProduction(t, st)
		ramesh := seedWorker(t, st, "Ramesh", "W-001")
		stitching := p.Operations[0]

		res, err := svc.AssignWorker(ctx, supervisorSession, p.ID, stitching.ID, &dto.AssignWorkerDto{
			WorkerID: ramesh.ID, PiecesDone: int64Ptr(200), Date: "2026-03-14",
		})
		require.NoError(t, err)

		assert.Equal(t, 1000.0, res.Salary.TotalAmount)
		assert.Equal(t, 5.0, res.Salary.AmountPerPiece)
		assert.False(t, res.Salary.Paid)
		assert.Equal(t, "Ramesh", res.Assignment.WorkerName)
		assert.Equal(t, "Stitching", res.Assignment.OperationName)
		assert.Equal(t, "Summer Kurta", res.Assignment.ProductionName)
		assert.Equal(t, "2026-03-14", res.Assignment.Date)

		stored, err := st.Productions.GetByID(ctx, p.ID)
		require.NoError(t, err)
		detail := stored.Operations[stored.FindOperation(stitching.ID)]
		assert.Equal(t, int64(200), detail.PiecesDone)
		assert.True(t, detail.IsCompleted)
		assert.Equal(t, ramesh.ID, detail.AssignedWorkerID)
		assert.Equal(t, "Ramesh", detail.AssignedWorkerName)
	})

	t.Run("same key twice keeps one record", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewProductionService(nil, nil, st)
		p := seedProduction(t, st)
		ramesh := seedWorker(t, st, "Ramesh", "W-001")
		detailID := p.Operations[0].ID

		first, err := svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(50)})
		require.NoError(t, err)
		second, err := svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(80)})
		require.NoError(t, err)

		assert.Equal(t, first.Assignment.ID, second.Assignment.ID)
		assert.Equal(t, first.Salary.ID, second.Salary.ID)
		assert.Equal(t, 400.0, second.Salary.TotalAmount)

		all, err := NewAssignmentService(nil, st).List(ctx, dto.AssignmentFilterDto{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, int64(80), all[0].PiecesDone)

		idx := second.Production.FindOperation(detailID)
		assert.Equal(t, int64(80), second.Production.Operations[idx].PiecesDone)
		assert.False(t, second.Production.Operations[idx].IsCompleted)
	})

	t.Run("pieces across workers cannot exceed total", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewProductionService(nil, nil, st)
		p := seedProduction(t, st)
		ramesh := seedWorker(t, st, "Ramesh", "W-001")
		suresh := seedWorker(t, st, "Suresh", "W-002")
		detailID := p.Operations[0].ID

		_, err := svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(120)})
		require.NoError(t, err)
		_, err = svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: suresh.ID, PiecesDone: int64Ptr(100)})
		assert.True(t, cErr.Is(err, cErr.PIECES_EXCEED_TOTAL))

		all, err := NewAssignmentService(nil, st).List(ctx, dto.AssignmentFilterDto{Worker: "Suresh"})
		require.NoError(t, err)
		assert.Empty(t, all)

		res, err := svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: suresh.ID, PiecesDone: int64Ptr(80)})
		require.NoError(t, err)
		idx := res.Production.FindOperation(detailID)
		assert.Equal(t, int64(200), res.Production.Operations[idx].PiecesDone)
		assert.True(t, res.Production.Operations[idx].IsCompleted)
		assert.Equal(t, "Suresh", res.Production.Operations[idx].AssignedWorkerName)
	})

	t.Run("paid salary cannot be reassigned", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewProductionService(nil, nil, st)
		p := seedProduction(t, st)
		ramesh := seedWorker(t, st, "Ramesh", "W-001")
		detailID := p.Operations[1].ID

		res, err := svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(40)})
		require.NoError(t, err)
		assert.Equal(t, 50.0, res.Salary.TotalAmount)

		_, err = NewSalaryService(nil, st).PayWorkerSalary(ctx, adminSession, res.Salary.ID)
		require.NoError(t, err)

		_, err = svc.AssignWorker(ctx, supervisorSession, p.ID, detailID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(60)})
		assert.True(t, cErr.Is(err, cErr.ALREADY_PAID))
	})

	t.Run("unknown production, detail or worker", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewProductionService(nil, nil, st)
		p := seedProduction(t, st)
		ramesh := seedWorker(t, st, "Ramesh", "W-001")
		req := &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(1)}

		_, err := svc.AssignWorker(ctx, supervisorSession, model.NewID(), p.Operations[0].ID, req)
		assert.True(t, cErr.Is(err, cErr.NOT_FOUND))
		_, err = svc.AssignWorker(ctx, supervisorSession, p.ID, model.NewID(), req)
		assert.True(t, cErr.Is(err, cErr.NOT_FOUND))
		_, err = svc.AssignWorker(ctx, supervisorSession, p.ID, p.Operations[0].ID, &dto.AssignWorkerDto{WorkerID: model.NewID(), PiecesDone: int64Ptr(1)})
		assert.True(t, cErr.Is(err, cErr.NOT_FOUND))
	})
}

func TestProductionService_Update(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	svc := NewProductionService(nil, nil, st)
	p := seedProduction(t, st)
	ramesh := seedWorker(t, st, "Ramesh", "W-001")
	stitching := p.Operations[0]

	_, err := svc.AssignWorker(ctx, supervisorSession, p.ID, stitching.ID, &dto.AssignWorkerDto{WorkerID: ramesh.ID, PiecesDone: int64Ptr(150)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, &dto.UpdateProductionDto{TotalQuantity: int64Ptr(100)})
	assert.True(t, cErr.Is(err, cErr.PIECES_EXCEED_TOTAL))

	color := "Black"
	updated, err := svc.Update(ctx, p.ID, &dto.UpdateProductionDto{
		Color:         &color,
		TotalQuantity: int64Ptr(150),
		Operations: []dto.ProductionOperationDto{
			{ID: stitching.ID, Name: "Stitching", RatePerPiece: 5.5},
			{Name: "Packing", RatePerPiece: 0.5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Black", updated.Color)
	require.Len(t, updated.Operations, 3)

	detail := updated.Operations[updated.FindOperation(stitching.ID)]
	assert.Equal(t, int64(150), detail.PiecesDone)
	assert.Equal(t, 5.5, detail.RatePerPiece)
	assert.True(t, detail.IsCompleted)
	assert.Equal(t, "Packing", updated.Operations[2].Name)
	assert.NotEmpty(t, updated.Operations[2].ID)
}

func TestProgressOf(t *testing.T) {
	p := &model.Production{
		TotalQuantity: 200,
		Operations: []model.ProductionOperation{
			{ID: "a", Name: "Stitching", PiecesDone: 200, IsCompleted: true},
			{ID: "b", Name: "Ironing", PiecesDone: 50},
		},
	}
	progress := ProgressOf(p)
	require.Len(t, progress.Operations, 2)
	assert.Equal(t, 100.0, progress.Operations[0].Percentage)
	assert.Equal(t, 25.0, progress.Operations[1].Percentage)
	assert.Equal(t, int64(200), progress.Operations[1].TotalPieces)
	assert.Equal(t, 62.5, progress.Percentage)

	assert.Zero(t, ProgressOf(&model.Production{}).Percentage)
}
