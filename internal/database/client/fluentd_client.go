package client

import (
	"context"
	"time"

	"github.com/jainam30/mohil-enterprise/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdPoster 讓 LogRepository 可替換成 noop 或測試替身
type FluentdPoster interface {
	Post(ctx context.Context, tag string, rec map[string]any) error
	Close() error
}

// FluentdClient implements FluentdPoster using fluent-logger-golang.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient FLUENTD__ENABLED=false 時回傳 NoopClient
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (FluentdPoster, func(), error) {
	if !config.Fluentd.Enabled {
		return &NoopClient{}, func() {}, nil
	}
	prefix := "mohil"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		Async:      true,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	fluentdClient := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		if err := fluentdClient.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return fluentdClient, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post 送出一筆紀錄；TagPrefix 由 fluent-logger 自動加上
func (c *FluentdClient) Post(ctx context.Context, tag string, rec map[string]any) error {
	return c.client.Post(tag, rec)
}

// NoopClient 停用模式
type NoopClient struct{}

func (n *NoopClient) Post(ctx context.Context, tag string, rec map[string]any) error { return nil }
func (n *NoopClient) Close() error                                                   { return nil }
