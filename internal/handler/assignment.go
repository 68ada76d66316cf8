package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type AssignmentHandler struct {
	trace             *telemetry.Trace
	assignmentService *service.AssignmentService
}

func NewAssignmentHandler(trace *telemetry.Trace, assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{trace: trace, assignmentService: assignmentService}
}

// List 指派紀錄
// @Summary 指派紀錄，篩選值空白或 all 代表不篩選
// @Tags Assignment
// @Security BearerAuth
// @Produce json
// @Param worker query string false "工人姓名"
// @Param operation query string false "工序名稱"
// @Param production query string false "生產編號"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} model.WorkerAssignment
// @Failure 400 {object} response.Response
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var filter dto.AssignmentFilterDto
	if cause, err := validate.BindQuery(c, &filter); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.assignmentService.List(ctx, filter)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Options 篩選選項
// @Summary 指派紀錄的篩選下拉值
// @Tags Assignment
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AssignmentOptionsDto
// @Router /assignments/options [get]
func (h *AssignmentHandler) Options(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.assignmentService.Options(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// ByDate 每日生產
// @Summary 某日的指派紀錄與總件數
// @Tags Assignment
// @Security BearerAuth
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Success 200 {object} dto.DailyProductionDto
// @Failure 400 {object} response.Response
// @Router /assignments/by-date/{date} [get]
func (h *AssignmentHandler) ByDate(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	date := c.Param("date")
	if cause, err := validate.ParseDate(date, "date"); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.assignmentService.ByDate(ctx, date)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
