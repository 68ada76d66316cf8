package repository

import (
	"context"
	"time"
)

// NoopRateLimiter Redis 停用時使用：永不限流
type NoopRateLimiter struct{}

func (NoopRateLimiter) Consume(ctx context.Context, scope, subject string, limit int64, window time.Duration) (int64, time.Duration, error) {
	return limit, window, nil
}

func (NoopRateLimiter) Remaining(ctx context.Context, scope, subject string, limit int64) (int64, error) {
	return limit, nil
}

func (NoopRateLimiter) Reset(ctx context.Context, scope, subject string) error { return nil }

// NoopIdempotencyGuard Redis 停用時使用：每次都保留成功
type NoopIdempotencyGuard struct{}

func (NoopIdempotencyGuard) Reserve(ctx context.Context, userID, key string, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NoopIdempotencyGuard) Release(ctx context.Context, userID, key string) error { return nil }
