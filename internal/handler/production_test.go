package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createWorker(t *testing.T, srv *testServer, name, code string) dto.WorkerResponseDto {
	t.Helper()
	rec := srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, newWorkerBody(name, code), nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var w dto.WorkerResponseDto
	decode(t, rec, &w)
	return w
}

func createProduction(t *testing.T, srv *testServer) model.Production {
	t.Helper()
	rec := srv.do(t, http.MethodPost, "/productions", srv.supervisorToken, dto.CreateProductionDto{
		Name:          "Summer Kurta",
		ProductionID:  "PRD-001",
		PONumber:      "PO-77",
		Color:         "Indigo",
		TotalFabric:   500,
		Average:       2.5,
		TotalQuantity: 200,
		Operations: []dto.ProductionOperationDto{
			{Name: "Stitching", RatePerPiece: 5},
			{Name: "Ironing", RatePerPiece: 1.25},
		},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p model.Production
	decode(t, rec, &p)
	require.Len(t, p.Operations, 2)
	return p
}

func TestWorkerCRUD(t *testing.T) {
	srv := newTestServer(t)
	w := createWorker(t, srv, "Ramesh Patel", "W-001")
	assert.NotEmpty(t, w.ID)
	assert.NotEmpty(t, w.CreatedBy)

	rec := srv.do(t, http.MethodGet, "/workers?search=ramesh", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.WorkerResponseDto
	decode(t, rec, &list)
	require.Len(t, list, 1)

	name := "Ramesh K Patel"
	rec = srv.do(t, http.MethodPut, "/workers/"+w.ID, srv.supervisorToken, dto.UpdateWorkerDto{Name: &name}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated dto.WorkerResponseDto
	decode(t, rec, &updated)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "W-001", updated.WorkerID)

	rec = srv.do(t, http.MethodDelete, "/workers/"+w.ID, srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/workers/"+w.ID, srv.supervisorToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, cErr.NOT_FOUND, decode(t, rec, nil).Code)
}

func listWorkers(t *testing.T, srv *testServer) []dto.WorkerResponseDto {
	t.Helper()
	rec := srv.do(t, http.MethodGet, "/workers", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []dto.WorkerResponseDto
	decode(t, rec, &list)
	return list
}

func TestCreateWorkerInvalidBodyWritesNothing(t *testing.T) {
	srv := newTestServer(t)
	createWorker(t, srv, "Ramesh Patel", "W-001")
	before := listWorkers(t, srv)

	body := newWorkerBody("Ra", "W-002")
	rec := srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, decode(t, rec, nil).Code)

	assert.Len(t, listWorkers(t, srv), len(before))
}

func TestDeleteWorkerKeepsOthersAndHistory(t *testing.T) {
	srv := newTestServer(t)
	ramesh := createWorker(t, srv, "Ramesh Patel", "W-001")
	suresh := createWorker(t, srv, "Suresh Shah", "W-002")
	p := createProduction(t, srv)

	path := "/productions/" + p.ID + "/operations/" + p.Operations[0].ID + "/assignments"
	rec := srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: suresh.ID, PiecesDone: int64Ptr(10)}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodDelete, "/workers/"+suresh.ID, srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := listWorkers(t, srv)
	require.Len(t, list, 1)
	assert.Equal(t, ramesh.ID, list[0].ID)

	rec = srv.do(t, http.MethodGet, "/assignments?worker=Suresh%20Shah", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var assignments []model.WorkerAssignment
	decode(t, rec, &assignments)
	require.Len(t, assignments, 1)
	assert.Equal(t, suresh.ID, assignments[0].WorkerID)

	rec = srv.do(t, http.MethodGet, "/salaries/workers?workerId="+suresh.ID, srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var salaries []model.WorkerSalary
	decode(t, rec, &salaries)
	require.Len(t, salaries, 1)
	assert.Equal(t, "Suresh Shah", salaries[0].WorkerName)
}

func TestWorkerBadID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/workers/not-a-uuid", srv.supervisorToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.BAD_REQUEST_PARAMS, decode(t, rec, nil).Code)
}

func TestBankImageWithoutStorage(t *testing.T) {
	srv := newTestServer(t)
	w := createWorker(t, srv, "Ramesh Patel", "W-001")

	// 沒有 multipart file
	rec := srv.do(t, http.MethodPost, "/workers/"+w.ID+"/bank-image", srv.supervisorToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.BAD_REQUEST_BODY, decode(t, rec, nil).Code)
}

func TestAssignWorkerFlow(t *testing.T) {
	srv := newTestServer(t)
	w := createWorker(t, srv, "Ramesh Patel", "W-001")
	p := createProduction(t, srv)
	stitching := p.Operations[0]

	path := "/productions/" + p.ID + "/operations/" + stitching.ID + "/assignments"
	rec := srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: w.ID, PiecesDone: int64Ptr(120)}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res dto.AssignmentResultDto
	decode(t, rec, &res)
	assert.Equal(t, int64(120), res.Assignment.PiecesDone)
	assert.InDelta(t, 600, res.Salary.TotalAmount, 0.001)
	assert.False(t, res.Salary.Paid)

	// 超過總數量
	rec = srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: w.ID, PiecesDone: int64Ptr(201)}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.PIECES_EXCEED_TOTAL, decode(t, rec, nil).Code)

	rec = srv.do(t, http.MethodGet, "/productions/"+p.ID+"/progress", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var progress dto.ProductionProgressDto
	decode(t, rec, &progress)
	require.Len(t, progress.Operations, 2)
	assert.InDelta(t, 60, progress.Operations[0].Percentage, 0.001)

	today := time.Now().UTC().Format("2006-01-02")
	rec = srv.do(t, http.MethodGet, "/assignments/by-date/"+today, srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var daily dto.DailyProductionDto
	decode(t, rec, &daily)
	assert.Equal(t, int64(120), daily.TotalPieces)

	rec = srv.do(t, http.MethodGet, "/assignments?worker=all&operation=Stitching", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var assignments []model.WorkerAssignment
	decode(t, rec, &assignments)
	assert.Len(t, assignments, 1)
}

func TestAssignWorkerUnknownDetail(t *testing.T) {
	srv := newTestServer(t)
	w := createWorker(t, srv, "Ramesh Patel", "W-001")
	p := createProduction(t, srv)

	path := "/productions/" + p.ID + "/operations/" + w.ID + "/assignments"
	rec := srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: w.ID, PiecesDone: int64Ptr(1)}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestByDateRejectsBadDate(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/assignments/by-date/17-10-2026", srv.supervisorToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.BAD_REQUEST_PARAMS, decode(t, rec, nil).Code)
}

func int64Ptr(v int64) *int64 { return &v }
