package repository

import (
	"github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/google/wire"
)

// NewRateLimiter REDIS__ENABLED=false 時退回 noop
func NewRateLimiter(trace *telemetry.Trace, redisClient *client.RedisClient) store.RateLimiter {
	if !redisClient.Enabled() {
		return NoopRateLimiter{}
	}
	return NewRateLimiterRepository(trace, redisClient)
}

func NewIdempotencyGuard(trace *telemetry.Trace, redisClient *client.RedisClient) store.IdempotencyGuard {
	if !redisClient.Enabled() {
		return NoopIdempotencyGuard{}
	}
	return NewIdempotencyRepository(trace, redisClient)
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewRateLimiter,
	NewIdempotencyGuard,
)
