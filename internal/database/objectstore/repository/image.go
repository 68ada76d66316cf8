package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrStorageDisabled = errors.New("object storage is disabled")

// ImageRepository 銀行資料與版型圖片的存取
type ImageRepository struct {
	trace      *telemetry.Trace
	client     *client.S3Client
	presignTTL time.Duration
}

func NewImageRepository(config *config.Configuration, trace *telemetry.Trace, client *client.S3Client) *ImageRepository {
	ttl := config.Storage.PresignTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ImageRepository{trace: trace, client: client, presignTTL: ttl}
}

func (repository *ImageRepository) Enabled() bool {
	return repository.client.Enabled()
}

func (repository *ImageRepository) Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) (err error) {
	ctx, span, end := repository.trace.WithSpan(ctx)
	defer func() { end(err) }()
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Bucket: repository.client.Bucket(), Key: key, ContentType: contentType, Size: size, Op: "put",
	})
	if !repository.Enabled() {
		return ErrStorageDisabled
	}

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read upload: %w", err)
	}
	_, err = repository.client.Client().PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(repository.client.Bucket()),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// PresignedURL 空 key 回傳空字串
func (repository *ImageRepository) PresignedURL(ctx context.Context, key string) (url string, err error) {
	if key == "" {
		return "", nil
	}
	ctx, span, end := repository.trace.WithSpan(ctx)
	defer func() { end(err) }()
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Bucket: repository.client.Bucket(), Key: key, Op: "presign",
	})
	if !repository.Enabled() {
		return "", ErrStorageDisabled
	}

	presignClient := s3.NewPresignClient(repository.client.Client())
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(repository.client.Bucket()),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = repository.presignTTL
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return request.URL, nil
}

func (repository *ImageRepository) Delete(ctx context.Context, key string) (err error) {
	if key == "" {
		return nil
	}
	ctx, span, end := repository.trace.WithSpan(ctx)
	defer func() { end(err) }()
	repository.trace.ApplyTraceAttributes(span, core.TraceStorageMeta{
		Bucket: repository.client.Bucket(), Key: key, Op: "delete",
	})
	if !repository.Enabled() {
		return ErrStorageDisabled
	}

	_, err = repository.client.Client().DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(repository.client.Bucket()),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}
