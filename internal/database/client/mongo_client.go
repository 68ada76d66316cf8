package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/config"
	"github.com/jainam30/mohil-enterprise/internal/core"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

var ErrMongoURIRequired = errors.New("MONGODB__URI is required")

const mongoConnectTimeout = 10 * time.Second

// MongoClient 連接 MongoDB，database 名稱在建立時決定
type MongoClient struct {
	client   *mongo.Client
	database string
	logger   *zap.Logger
}

func NewMongoClient(logger *zap.Logger, conf *config.Configuration) (*MongoClient, func(), error) {
	if strings.TrimSpace(conf.MongoDB.URI) == "" {
		return nil, nil, ErrMongoURIRequired
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(withMongoOptions(conf.MongoDB.URI, conf.MongoDB.Options)).
		SetAppName(conf.App.Name)
	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("failed to connect to MongoDB", zap.Error(err))
		return nil, nil, err
	}
	// Connect 不會真的連線，先 ping 一次確認
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		logger.Error("failed to ping MongoDB", zap.Error(err))
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	mc := &MongoClient{client: c, database: conf.MongoDB.Database, logger: logger}
	if mc.database == "" {
		mc.database = core.MongoDBDefault
	}
	logger.Info("Connected to MongoDB", zap.String("database", mc.database))

	cleanup := func() {
		logger.Info("closing the MongoDB resources")
		if err := mc.Close(); err != nil {
			logger.Error("failed to close MongoDB client", zap.Error(err))
		}
	}
	return mc, cleanup, nil
}

// withMongoOptions 把 MONGODB__OPTIONS 接到 URI query 上
func withMongoOptions(uri, extra string) string {
	switch {
	case extra == "":
		return uri
	case strings.Contains(uri, "?"):
		return uri + "&" + extra
	default:
		return uri + "?" + extra
	}
}

func (m *MongoClient) Close() error {
	return m.client.Disconnect(context.Background())
}

func (m *MongoClient) Client() *mongo.Client {
	return m.client
}

// Database 回傳設定中的資料庫
func (m *MongoClient) Database() *mongo.Database {
	return m.client.Database(m.database)
}
