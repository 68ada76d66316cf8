package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler 只掛在 admin 群組下
type EmployeeHandler struct {
	trace           *telemetry.Trace
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(trace *telemetry.Trace, employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{trace: trace, employeeService: employeeService}
}

// Create 新增員工
// @Summary 新增月薪員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param body body dto.CreateEmployeeDto true "員工資料"
// @Success 201 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateEmployeeDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.employeeService.Create(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 員工列表
// @Summary 員工列表
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param search query string false "姓名/代號/職稱"
// @Success 200 {array} dto.EmployeeResponseDto
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.employeeService.List(ctx, c.Query("search"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得員工
// @Summary 取得單一員工
// @Tags Employee
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 404 {object} response.Response
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.employeeService.Get(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新員工
// @Summary 部分更新員工
// @Tags Employee
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param body body dto.UpdateEmployeeDto true "更新欄位"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateEmployeeDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.employeeService.Update(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// UploadBankImage 上傳員工存摺照片
// @Summary 上傳員工存摺照片
// @Tags Employee
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Employee ID"
// @Param file formData file true "圖片"
// @Success 200 {object} dto.EmployeeResponseDto
// @Failure 400 {object} response.Response
// @Router /employees/{id}/bank-image [post]
func (h *EmployeeHandler) UploadBankImage(c *gin.Context) {
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

	res, err := h.employeeService.UploadBankImage(ctx, id, upload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
