package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/pkg/sheet"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type SalaryHandler struct {
	trace         *telemetry.Trace
	salaryService *service.SalaryService
}

func NewSalaryHandler(trace *telemetry.Trace, salaryService *service.SalaryService) *SalaryHandler {
	return &SalaryHandler{trace: trace, salaryService: salaryService}
}

// ListWorkers 計件薪資
// @Summary 計件薪資列表
// @Tags Salary
// @Security BearerAuth
// @Produce json
// @Param workerId query string false "工人"
// @Param productionId query string false "生產單"
// @Param paid query bool false "是否已付"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} model.WorkerSalary
// @Failure 400 {object} response.Response
// @Router /salaries/workers [get]
func (h *SalaryHandler) ListWorkers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.WorkerSalaryQueryDto
	if cause, err := validate.BindQuery(c, &query); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.salaryService.ListWorkerSalaries(ctx, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// PayWorker 標記已付
// @Summary 將計件薪資標記為已付
// @Tags Salary
// @Security BearerAuth
// @Produce json
// @Param id path string true "Salary ID"
// @Success 200 {object} model.WorkerSalary
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /salaries/workers/{id}/pay [patch]
func (h *SalaryHandler) PayWorker(c *gin.Context) {
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
	res, err := h.salaryService.PayWorkerSalary(ctx, session, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Recalculate 重算未付薪資
// @Summary 以件數與單價重算所有未付薪資
// @Tags Salary
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RecalculateResultDto
// @Router /salaries/workers/recalculate [post]
func (h *SalaryHandler) Recalculate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.salaryService.RecalculateAll(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ExportWorkers 匯出計件薪資
// @Summary 以 xlsx 匯出計件薪資
// @Tags Salary
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param workerId query string false "工人"
// @Param productionId query string false "生產單"
// @Param paid query bool false "是否已付"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Router /salaries/workers/export [get]
func (h *SalaryHandler) ExportWorkers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.WorkerSalaryQueryDto
	if cause, err := validate.BindQuery(c, &query); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	filename, body, err := h.salaryService.ExportWorkerSalaries(ctx, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Attachment(c, filename, sheet.ContentType, body)
}

// CreateEmployee 建立員工月薪
// @Summary 建立員工月薪紀錄，未帶金額時使用員工月薪
// @Tags Salary
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "重送保護"
// @Param body body dto.CreateEmployeeSalaryDto true "月薪資料"
// @Success 201 {object} model.EmployeeSalary
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /salaries/employees [post]
func (h *SalaryHandler) CreateEmployee(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.CreateEmployeeSalaryDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.salaryService.CreateEmployeeSalary(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// ListEmployees 員工月薪列表
// @Summary 員工月薪列表
// @Tags Salary
// @Security BearerAuth
// @Produce json
// @Param employeeId query string false "員工"
// @Param month query string false "YYYY-MM"
// @Param paid query bool false "是否已付"
// @Success 200 {array} model.EmployeeSalary
// @Router /salaries/employees [get]
func (h *SalaryHandler) ListEmployees(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.EmployeeSalaryQueryDto
	if cause, err := validate.BindQuery(c, &query); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.salaryService.ListEmployeeSalaries(ctx, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// PayEmployee 員工月薪標記已付
// @Summary 員工月薪標記已付
// @Tags Salary
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee salary ID"
// @Success 200 {object} model.EmployeeSalary
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /salaries/employees/{id}/pay [patch]
func (h *SalaryHandler) PayEmployee(c *gin.Context) {
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
	res, err := h.salaryService.PayEmployeeSalary(ctx, session, id)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
