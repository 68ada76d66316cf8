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

type ReportHandler struct {
	trace         *telemetry.Trace
	reportService *service.ReportService
}

func NewReportHandler(trace *telemetry.Trace, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{trace: trace, reportService: reportService}
}

// Production 生產成本報表
// @Summary 生產成本報表，含期間統計
// @Tags Report
// @Security BearerAuth
// @Produce json
// @Param id path string true "Production ID"
// @Param period query string false "daily/weekly/monthly/yearly"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} dto.ProductionReportDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/productions/{id} [get]
func (h *ReportHandler) Production(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, query, ok := h.bindProductionReport(c, end)
	if !ok {
		return
	}
	res, err := h.reportService.ProductionReport(ctx, id, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ExportProduction 匯出生產成本報表
// @Summary 以 xlsx 匯出生產成本報表
// @Tags Report
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Production ID"
// @Param period query string false "daily/weekly/monthly/yearly"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /reports/productions/{id}/export [get]
func (h *ReportHandler) ExportProduction(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, query, ok := h.bindProductionReport(c, end)
	if !ok {
		return
	}
	filename, body, err := h.reportService.ExportProductionReport(ctx, id, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Attachment(c, filename, sheet.ContentType, body)
}

func (h *ReportHandler) bindProductionReport(c *gin.Context, end func(error)) (string, dto.ProductionReportQueryDto, bool) {
	var query dto.ProductionReportQueryDto
	id, cause, err := validate.ParseID(c, "id")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return "", query, false
	}
	if cause, err := validate.BindQuery(c, &query); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return "", query, false
	}
	return id, query, true
}

// Workers 工人績效
// @Summary 工人件數與收入統計，依收入排序
// @Tags Report
// @Security BearerAuth
// @Produce json
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {array} dto.WorkerPerformanceDto
// @Router /reports/workers [get]
func (h *ReportHandler) Workers(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var query dto.WorkerReportQueryDto
	if cause, err := validate.BindQuery(c, &query); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.reportService.WorkerPerformance(ctx, query)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
