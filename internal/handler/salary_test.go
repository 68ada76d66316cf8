package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/pkg/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayAndExportWorkerSalaries(t *testing.T) {
	srv := newTestServer(t)
	w := createWorker(t, srv, "Ramesh Patel", "W-001")
	p := createProduction(t, srv)

	path := "/productions/" + p.ID + "/operations/" + p.Operations[1].ID + "/assignments"
	rec := srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: w.ID, PiecesDone: int64Ptr(80)}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/salaries/workers?paid=false", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var unpaid []model.WorkerSalary
	decode(t, rec, &unpaid)
	require.Len(t, unpaid, 1)
	assert.InDelta(t, 100, unpaid[0].TotalAmount, 0.001)

	rec = srv.do(t, http.MethodPatch, "/salaries/workers/"+unpaid[0].ID+"/pay", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var paid model.WorkerSalary
	decode(t, rec, &paid)
	assert.True(t, paid.Paid)
	assert.Equal(t, "Floor Supervisor", paid.PaidBy)

	rec = srv.do(t, http.MethodPatch, "/salaries/workers/"+unpaid[0].ID+"/pay", srv.supervisorToken, nil, nil)
	assert.Equal(t, cErr.ALREADY_PAID, decode(t, rec, nil).Code)

	// 已付的薪資不能再被指派覆寫
	rec = srv.do(t, http.MethodPost, path, srv.supervisorToken, dto.AssignWorkerDto{WorkerID: w.ID, PiecesDone: int64Ptr(90)}, nil)
	assert.Equal(t, cErr.ALREADY_PAID, decode(t, rec, nil).Code)

	rec = srv.do(t, http.MethodGet, "/salaries/workers/export", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sheet.ContentType, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), `attachment; filename="worker-salaries-`))
	assert.NotZero(t, rec.Body.Len())
}

func TestRecalculateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/salaries/workers/recalculate", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res dto.RecalculateResultDto
	decode(t, rec, &res)
	assert.Equal(t, 0, res.Scanned)
}

func TestDashboardRoles(t *testing.T) {
	srv := newTestServer(t)
	createWorker(t, srv, "Ramesh Patel", "W-001")

	rec := srv.do(t, http.MethodGet, "/dashboard", srv.supervisorToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sup dto.DashboardDto
	decode(t, rec, &sup)
	assert.Equal(t, int64(1), sup.Workers)
	assert.Nil(t, sup.Employees)

	rec = srv.do(t, http.MethodGet, "/dashboard", srv.adminToken, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var admin dto.DashboardDto
	decode(t, rec, &admin)
	assert.NotNil(t, admin.Employees)
}

func TestIdempotencyKeyRejectsReplay(t *testing.T) {
	srv := newTestServer(t)
	headers := map[string]string{"Idempotency-Key": "create-w-001"}

	rec := srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, newWorkerBody("Ramesh Patel", "W-001"), headers)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, newWorkerBody("Ramesh Patel", "W-001"), headers)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, cErr.DUPLICATE_SUBMISSION, decode(t, rec, nil).Code)

	// 失敗的請求會釋放 key
	bad := map[string]string{"Idempotency-Key": "create-bad"}
	rec = srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, map[string]string{"name": "x"}, bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, newWorkerBody("Suresh Shah", "W-002"), bad)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodPost, "/workers", srv.supervisorToken, newWorkerBody("Mahesh Shah", "W-003"),
		map[string]string{"Idempotency-Key": strings.Repeat("k", 129)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, cErr.BAD_REQUEST_HEADERS, decode(t, rec, nil).Code)

	// 新增工序與註冊 supervisor 同樣受保護
	rec = srv.do(t, http.MethodPost, "/products", srv.supervisorToken, dto.CreateProductDto{
		Name: "Summer Kurta", ProductID: "PRD-KRT", DesignNo: "D-101", Color: "Indigo",
		Operations: []dto.OperationDto{{Name: "Stitching", OperationID: "OP-1", AmountPerPiece: 5}},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var product dto.ProductResponseDto
	decode(t, rec, &product)

	opHeaders := map[string]string{"Idempotency-Key": "create-op-001"}
	rec = srv.do(t, http.MethodPost, "/products/"+product.ID+"/operations", srv.supervisorToken,
		dto.OperationDto{Name: "Ironing", OperationID: "OP-2", AmountPerPiece: 1.25}, opHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = srv.do(t, http.MethodPost, "/products/"+product.ID+"/operations", srv.supervisorToken,
		dto.OperationDto{Name: "Packing", OperationID: "OP-3", AmountPerPiece: 1}, opHeaders)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, cErr.DUPLICATE_SUBMISSION, decode(t, rec, nil).Code)

	supHeaders := map[string]string{"Idempotency-Key": "register-sup-001"}
	rec = srv.do(t, http.MethodPost, "/auth/supervisors", srv.adminToken,
		dto.RegisterSupervisorDto{Name: "Night Shift", Email: "night@mohil.in", Password: "secret123"}, supHeaders)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = srv.do(t, http.MethodPost, "/auth/supervisors", srv.adminToken,
		dto.RegisterSupervisorDto{Name: "Day Shift", Email: "day@mohil.in", Password: "secret123"}, supHeaders)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, cErr.DUPLICATE_SUBMISSION, decode(t, rec, nil).Code)
}
