package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	trace          *telemetry.Trace
	productService *service.ProductService
}

func NewProductHandler(trace *telemetry.Trace, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{trace: trace, productService: productService}
}

// Create 新增產品
// @Summary 新增產品與工序
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param body body dto.CreateProductDto true "產品資料"
// @Success 201 {object} dto.ProductResponseDto
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateProductDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productService.Create(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// List 產品列表
// @Summary 產品列表
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param search query string false "名稱/代號"
// @Success 200 {array} dto.ProductResponseDto
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.productService.List(ctx, c.Query("search"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Get 取得產品
// @Summary 取得單一產品與工序
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponseDto
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productService.Get(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Update 更新產品
// @Summary 更新產品；帶 operations 時以工序代號對應
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body dto.UpdateProductDto true "更新欄位"
// @Success 200 {object} dto.ProductResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.UpdateProductDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productService.Update(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ListOperations 產品工序
// @Summary 產品的工序目錄
// @Tags Product
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} model.Operation
// @Failure 404 {object} response.Response
// @Router /products/{id}/operations [get]
func (h *ProductHandler) ListOperations(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productService.ListOperations(ctx, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// CreateOperation 新增工序
// @Summary 產品新增一道工序
// @Tags Product
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body dto.OperationDto true "工序"
// @Success 201 {object} model.Operation
// @Failure 409 {object} response.Response
// @Router /products/{id}/operations [post]
func (h *ProductHandler) CreateOperation(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	var req dto.OperationDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.productService.CreateOperation(ctx, id, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// UploadPatternImage 上傳版型圖
// @Summary 上傳產品版型圖
// @Tags Product
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param file formData file true "圖片"
// @Success 200 {object} dto.ProductResponseDto
// @Failure 400 {object} response.Response
// @Router /products/{id}/pattern-image [post]
func (h *ProductHandler) UploadPatternImage(c *gin.Context) {
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

	res, err := h.productService.UploadPatternImage(ctx, id, upload)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
