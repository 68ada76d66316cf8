package client

import (
	"errors"
	"strings"
	"time"

	"github.com/jainam30/mohil-enterprise/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrPostgresDSNRequired = errors.New("POSTGRES__DSN is required")

// PostgresClient 連接 Postgres（gorm）
type PostgresClient struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewPostgresClient(log *zap.Logger, config *config.Configuration) (*PostgresClient, func(), error) {
	if strings.TrimSpace(config.Postgres.DSN) == "" {
		return nil, nil, ErrPostgresDSNRequired
	}
	db, err := gorm.Open(postgres.Open(config.Postgres.DSN), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Error("failed to connect to Postgres", zap.Error(err))
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	if config.Postgres.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.Postgres.MaxOpenConns)
	}
	if config.Postgres.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.Postgres.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	log.Info("Connected to Postgres")

	postgresClient := &PostgresClient{db: db, logger: log}
	cleanup := func() {
		log.Info("closing the Postgres resources")
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close Postgres client", zap.Error(err))
		}
	}
	return postgresClient, cleanup, nil
}

// DB 回傳 gorm 連線
func (client *PostgresClient) DB() *gorm.DB {
	return client.db
}
