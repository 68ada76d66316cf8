package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type WorkerHandler struct {
	trace         *telemetry.Trace
	workerService *service.WorkerService
}

func NewWorkerHandler(trace *telemetry.Trace, workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{trace: trace, workerService: workerService}
}

// Create 新增工人
// @Summary 新增工人
// @Tags Worker
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param body body dto.CreateWorkerDto true "工人資料"
// @Success 201 {object} dto.WorkerResponseDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /workers [post]
func (h *WorkerHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateWorkerDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.workerService.Create(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 工人列表
// @Summary 工人列表，依建立時間新到舊
// @Tags Worker
// @Security BearerAuth
// @Produce json
// @Param search query string false "姓名/代號/電話"
// @Success 200 {array} dto.WorkerResponseDto
// @Router /workers [get]
func (h *WorkerHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.workerService.List(ctx, c.Query("search"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得工人
// @Summary 取得單一工人
// @Tags Worker
// @Security BearerAuth
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponseDto
// @Failure 404 {object} response.Response
// @Router /workers/{id} [get]
func (h *WorkerHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.workerService.Get(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新工人
// @Summary 部分更新工人資料
// @Tags Worker
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param body body dto.UpdateWorkerDto true "更新欄位"
// @Success 200 {object} dto.WorkerResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workers/{id} [put]
func (h *WorkerHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateWorkerDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.workerService.Update(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Delete 刪除工人
// @Summary 刪除工人
// @Tags Worker
// @Security BearerAuth
// @Param id path string true "Worker ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /workers/{id} [delete]
func (h *WorkerHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	if err := h.workerService.Delete(ctx, id); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"id": id})
}

// UploadBankImage 上傳存摺照片
// @Summary 上傳工人存摺照片，取代舊檔
// @Tags Worker
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Worker ID"
// @Param file formData file true "圖片"
// @Success 200 {object} dto.WorkerResponseDto
// @Failure 400 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /workers/{id}/bank-image [post]
func (h *WorkerHandler) UploadBankImage(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	upload, closeFn, err := imageFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	defer closeFn()

	res, err := h.workerService.UploadBankImage(ctx, id, upload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
