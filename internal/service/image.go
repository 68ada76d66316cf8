package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/gabriel-vasile/mimetype"
)

const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// ImageUpload handler 解析 multipart 後交給 service 的檔案
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// uploadImage 驗證格式與大小後上傳，回傳物件 key：<prefix>/<uuid><ext>
func uploadImage(ctx context.Context, images store.ImageStorage, prefix string, file ImageUpload) (string, error) {
	if images == nil || !images.Enabled() {
		return "", cErr.ServiceUnavailable("object storage is not configured")
	}
	if file.Size <= 0 || file.Size > MaxImageSize {
		return "", cErr.ValidateErr("file must be between 1 byte and 5 MB")
	}
	contentType, body, err := sniffImage(file.Body)
	if err != nil {
		return "", cErr.ValidateErr("failed to read uploaded file")
	}
	// 以檔案內容判斷格式，client 帶的 Content-Type 不採信
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", cErr.ValidateErr("file must be a png, jpeg or webp image")
	}
	key := fmt.Sprintf("%s/%s%s", prefix, model.NewID(), ext)
	if err := images.Upload(ctx, key, contentType, file.Size, io.LimitReader(body, MaxImageSize)); err != nil {
		return "", cErr.ExternalRequestError("failed to upload image")
	}
	return key, nil
}

// sniffImage 讀取開頭位元組判斷 MIME，回傳接回原內容的 reader
func sniffImage(r io.Reader) (string, io.Reader, error) {
	header := make([]byte, 3072)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	header = header[:n]
	detected := mimetype.Detect(header)
	return detected.String(), io.MultiReader(bytes.NewReader(header), r), nil
}

// presign 讀取失敗時回傳空字串，不影響主要資料
func presign(ctx context.Context, images store.ImageStorage, key string) string {
	if key == "" || images == nil || !images.Enabled() {
		return ""
	}
	url, err := images.PresignedURL(ctx, key)
	if err != nil {
		return ""
	}
	return url
}
