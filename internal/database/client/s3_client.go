package client

import (
	"context"
	"fmt"

	"github.com/jainam30/mohil-enterprise/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3Client 物件儲存連線；STORAGE__ENABLED=false 時 client 為 nil
type S3Client struct {
	client *s3.Client
	bucket string
}

func NewS3Client(logger *zap.Logger, config *config.Configuration) (*S3Client, error) {
	storage := config.Storage
	if !storage.Enabled {
		logger.Info("object storage disabled, image uploads return 503")
		return &S3Client{}, nil
	}
	if storage.Bucket == "" {
		return nil, fmt.Errorf("STORAGE__BUCKET is required when storage is enabled")
	}

	opts := []func(*awsConfig.LoadOptions) error{awsConfig.WithRegion(storage.Region)}
	if storage.AccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(storage.AccessKey, storage.SecretKey, ""),
		))
	}
	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(storage.Endpoint)
		}
		o.UsePathStyle = storage.UsePathStyle
	})
	logger.Info("object storage ready", zap.String("bucket", storage.Bucket))
	return &S3Client{client: client, bucket: storage.Bucket}, nil
}

func (c *S3Client) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *S3Client) Client() *s3.Client {
	return c.client
}

func (c *S3Client) Bucket() string {
	return c.bucket
}
