package response

import (
	"net/http"

	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// Create 201，由 Response middleware 包裝
func Create(c *gin.Context, data any) {
	c.Status(http.StatusCreated)
	set(c, data, "Create Success")
}

func Success(c *gin.Context, data any) {
	set(c, data, "Request Success")
}

func set(c *gin.Context, data any, message string) {
	if msg, ok := data.(gin.H); ok {
		if s, ok := msg["message"].(string); ok && s != "" {
			message = s
			delete(msg, "message")
		}
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}

// Attachment 直接輸出檔案（不包裝）
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func Fail(c *gin.Context, RequestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   RequestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, RequestID string, err error) {
	v := cErr.From(err)
	Fail(c, RequestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
}
