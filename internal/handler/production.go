package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type ProductionHandler struct {
	trace             *telemetry.Trace
	productionService *service.ProductionService
}

func NewProductionHandler(trace *telemetry.Trace, productionService *service.ProductionService) *ProductionHandler {
	return &ProductionHandler{trace: trace, productionService: productionService}
}

// Create 新增裁剪單
// @Summary 新增生產(裁剪)單；未帶 operations 時沿用產品工序
// @Tags Production
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param body body dto.CreateProductionDto true "生產資料"
// @Success 201 {object} model.Production
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /productions [post]
func (h *ProductionHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateProductionDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.Create(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 生產列表
// @Summary 生產列表
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param search query string false "生產編號/名稱/PO"
// @Success 200 {array} model.Production
// @Router /productions [get]
func (h *ProductionHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.productionService.List(ctx, c.Query("search"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得生產單
// @Summary 取得單一生產單
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param id path string true "Production ID"
// @Success 200 {object} model.Production
// @Failure 404 {object} response.Response
// @Router /productions/{id} [get]
func (h *ProductionHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.Get(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新生產單
// @Summary 更新生產單；總數量不可低於已完成件數
// @Tags Production
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Production ID"
// @Param body body dto.UpdateProductionDto true "更新欄位"
// @Success 200 {object} model.Production
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /productions/{id} [put]
func (h *ProductionHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateProductionDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.Update(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ListOperations 生產工序明細
// @Summary 生產單的工序明細
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param id path string true "Production ID"
// @Success 200 {array} model.ProductionOperation
// @Failure 404 {object} response.Response
// @Router /productions/{id}/operations [get]
func (h *ProductionHandler) ListOperations(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.ListOperations(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// AssignWorker 指派工人
// @Summary 指派工人到工序並記錄件數，同步更新薪資
// @Tags Production
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param id path string true "Production ID"
// @Param operationId path string true "Production operation ID"
// @Param body body dto.AssignWorkerDto true "指派資料"
// @Success 200 {object} dto.AssignmentResultDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /productions/{id}/operations/{operationId}/assignments [post]
func (h *ProductionHandler) AssignWorker(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	detailID, cause, err := validate.ParseID(c, "operationId")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.AssignWorkerDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.AssignWorker(ctx, session, id, detailID, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Progress 生產進度
// @Summary 各工序完成百分比
// @Tags Production
// @Security BearerAuth
// @Produce json
// @Param id path string true "Production ID"
// @Success 200 {object} dto.ProductionProgressDto
// @Failure 404 {object} response.Response
// @Router /productions/{id}/progress [get]
func (h *ProductionHandler) Progress(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productionService.Progress(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
