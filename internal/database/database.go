package database

import (
	"fmt"

	"github.com/jainam30/mohil-enterprise/config"
	client "github.com/jainam30/mohil-enterprise/internal/database/client"
	fluentdRepo "github.com/jainam30/mohil-enterprise/internal/database/fluentd/repository"
	mongoRepo "github.com/jainam30/mohil-enterprise/internal/database/mongodb/repository"
	objectRepo "github.com/jainam30/mohil-enterprise/internal/database/objectstore/repository"
	postgresRepo "github.com/jainam30/mohil-enterprise/internal/database/postgres/repository"
	redisRepo "github.com/jainam30/mohil-enterprise/internal/database/redis/repository"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet 定義所有 DB Client 與 repository 的依賴
var ProviderSet = wire.NewSet(
	NewStore,
	client.NewRedisClient,
	client.NewS3Client,
	client.NewFluentdClient,
	objectRepo.NewImageRepository,
	wire.Bind(new(store.ImageStorage), new(*objectRepo.ImageRepository)),
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)

// NewStore 依 DATABASE__DRIVER 連線 MongoDB（預設）或 Postgres
func NewStore(logger *zap.Logger, conf *config.Configuration, tr *telemetry.Trace) (*store.Store, func(), error) {
	switch conf.Database.Driver {
	case "", config.DriverMongo:
		mongoClient, cleanup, err := client.NewMongoClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		return mongoRepo.NewStore(mongoClient, tr), cleanup, nil
	case config.DriverPostgres:
		postgresClient, cleanup, err := client.NewPostgresClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		if err := postgresRepo.Migrate(postgresClient.DB()); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgresRepo.NewStore(postgresClient.DB(), tr), cleanup, nil
	}
	return nil, nil, fmt.Errorf("unsupported DATABASE__DRIVER %q", conf.Database.Driver)
}
