package handler

import (
	"mime"
	"path/filepath"

	"github.com/jainam30/mohil-enterprise/internal/core"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// ProviderSet Provider对象集合
var ProviderSet = wire.NewSet(
	NewHealthHandler,
	NewAuthHandler,
	NewWorkerHandler,
	NewEmployeeHandler,
	NewProductHandler,
	NewProductionHandler,
	NewAssignmentHandler,
	NewSalaryHandler,
	NewReportHandler,
	NewDashboardHandler,
)

// sessionFrom 取得 Auth middleware 放入的登入身分
func sessionFrom(c *gin.Context) (core.Session, error) {
	raw, _ := c.Get(core.ContextSessionKey)
	session, ok := raw.(core.Session)
	if !ok || !session.Valid() {
		return core.Session{}, cErr.InvalidSession("missing session")
	}
	return session, nil
}

// imageFrom 讀取 multipart 的 file 欄位，呼叫端負責 close
func imageFrom(c *gin.Context) (service.ImageUpload, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return service.ImageUpload{}, nil, cErr.ValidateErr("file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return service.ImageUpload{}, nil, cErr.ValidateErr("file cannot be read")
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
	}
	upload := service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	}
	return upload, func() { _ = f.Close() }, nil
}
