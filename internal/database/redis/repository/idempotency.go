package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	client "github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// IdempotencyRepository 以 SET NX EX 保留 Idempotency-Key
type IdempotencyRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewIdempotencyRepository(trace *telemetry.Trace, client *client.RedisClient) *IdempotencyRepository {
	return &IdempotencyRepository{trace: trace, client: client.Client()}
}

func (repository *IdempotencyRepository) Reserve(contextValue context.Context, userID, key string, ttl time.Duration) (reserved bool, returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	reserved, returnedError = repository.client.SetNX(contextValue, repository.buildKey(userID, key), time.Now().UTC().Unix(), ttl).Result()
	repository.trace.ApplyTraceAttributes(span, core.TraceIdempotencyMeta{
		UserID:   userID,
		Key:      key,
		Reserved: reserved,
		Op:       "reserve",
	})
	return reserved, returnedError
}

func (repository *IdempotencyRepository) Release(contextValue context.Context, userID, key string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceIdempotencyMeta{UserID: userID, Key: key, Op: "release"})
	returnedError = repository.client.Del(contextValue, repository.buildKey(userID, key)).Err()
	return returnedError
}

func (repository *IdempotencyRepository) buildKey(userID, key string) string {
	return fmt.Sprintf("%s:%s:%s:%s", core.RedisKeyServerName, core.RedisKeyIdempotency, userID, key)
}
