package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/database/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImageRepository_Disabled(t *testing.T) {
	conf := &config.Configuration{}
	s3Client, err := client.NewS3Client(zap.NewNop(), conf)
	require.NoError(t, err)

	repo := NewImageRepository(conf, nil, s3Client)
	assert.False(t, repo.Enabled())
	assert.Equal(t, time.Hour, repo.presignTTL)

	err = repo.Upload(context.Background(), "workers/w-1/bank/a.png", "image/png", 3, strings.NewReader("png"))
	require.ErrorIs(t, err, ErrStorageDisabled)

	url, err := repo.PresignedURL(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, url)

	_, err = repo.PresignedURL(context.Background(), "workers/w-1/bank/a.png")
	require.ErrorIs(t, err, ErrStorageDisabled)
}

func TestImageRepository_PresignWithStaticCredentials(t *testing.T) {
	conf := &config.Configuration{Storage: config.Storage{
		Enabled:      true,
		Bucket:       "mohil-images",
		Region:       "ap-south-1",
		Endpoint:     "http://localhost:9000",
		AccessKey:    "minio",
		SecretKey:    "minio-secret",
		UsePathStyle: true,
		PresignTTL:   10 * time.Minute,
	}}
	s3Client, err := client.NewS3Client(zap.NewNop(), conf)
	require.NoError(t, err)

	repo := NewImageRepository(conf, nil, s3Client)
	require.True(t, repo.Enabled())

	url, err := repo.PresignedURL(context.Background(), "products/p-1/pattern/x.png")
	require.NoError(t, err)
	assert.Contains(t, url, "http://localhost:9000/mohil-images/products/p-1/pattern/x.png")
	assert.Contains(t, url, "X-Amz-Expires=600")
}
