package handler

import (
	"net/http"

	"github.com/jainam30/mohil-enterprise/internal/pkg/response"
	"github.com/jainam30/mohil-enterprise/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthStatus *service.HealthService
}

func NewHealthHandler(status *service.HealthService) *HealthHandler {
	return &HealthHandler{healthStatus: status}
}

// Check 直接寫出 envelope 並 Abort，讓 Response middleware 跳過
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, response.Response{
		Code:        0,
		Data:        "ok",
		Message:     "success",
		Description: "service is alive",
	})
	c.Abort()
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Readiness 另外 ping 資料庫
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}
