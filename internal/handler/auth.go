package handler

import (
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
	"github.com/jainam30/mohil-enterprise/utils/validate"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	trace       *telemetry.Trace
	authService *service.AuthService
}

func NewAuthHandler(trace *telemetry.Trace, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{trace: trace, authService: authService}
}

// Login 登入
// @Summary 以 email/密碼登入並取得 token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginDto true "登入資料"
// @Success 200 {object} dto.LoginResponseDto
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.LoginDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	h.trace.ApplyTraceAttributes(span, core.TraceAuthMiddlewareMeta{ClientIP: c.ClientIP(), Status: "login"})

	res, err := h.authService.Login(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Me 目前登入者
// @Summary 取得目前登入者
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponseDto
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.authService.Me(ctx, session)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// RegisterSupervisor 建立督導帳號
// @Summary 管理員建立督導帳號
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.RegisterSupervisorDto true "督導資料"
// @Success 201 {object} dto.UserResponseDto
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/supervisors [post]
func (h *AuthHandler) RegisterSupervisor(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	var req dto.RegisterSupervisorDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.authService.RegisterSupervisor(ctx, session, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// ListSupervisors 督導列表
// @Summary 管理員查詢督導帳號
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.UserResponseDto
// @Failure 403 {object} response.Response
// @Router /auth/supervisors [get]
func (h *AuthHandler) ListSupervisors(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	session, err := sessionFrom(c)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	res, err := h.authService.ListSupervisors(ctx, session)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}
