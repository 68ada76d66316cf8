package repository

import (
	"context"
	"testing"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPoster struct {
	tags    []string
	records []map[string]any
}

func (p *recordingPoster) Post(ctx context.Context, tag string, rec map[string]any) error {
	p.tags = append(p.tags, tag)
	p.records = append(p.records, rec)
	return nil
}

func (p *recordingPoster) Close() error { return nil }

func TestLogRepository(t *testing.T) {
	poster := &recordingPoster{}
	repo := NewLogRepository(&config.Configuration{App: config.App{Version: "2.1.0"}}, poster)

	require.NoError(t, repo.LogRequest(context.Background(), model.RequestLog{RequestID: "r-1", Path: "/workers", Method: "POST"}))
	require.NoError(t, repo.LogResponse(context.Background(), model.ResponseLog{RequestID: "r-1", Code: 20100, StatusCode: 201}))

	require.Len(t, poster.records, 2)
	assert.Equal(t, []string{"request_log", "response_log"}, poster.tags)
	assert.Equal(t, "/workers", poster.records[0]["path"])
	assert.Equal(t, "2.1.0", poster.records[0]["version"])
	assert.NotEmpty(t, poster.records[0]["logged_at"])
	assert.Equal(t, float64(201), poster.records[1]["status_code"])
}
