package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/database/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *client.RedisClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, client.NewRedisClientFrom(rdb)
}

func TestRateLimiterRepository_Consume(t *testing.T) {
	mr, redisClient := setupRedis(t)
	repo := NewRateLimiterRepository(nil, redisClient)
	ctx := context.Background()

	for want := int64(2); want >= 0; want-- {
		remaining, ttl, err := repo.Consume(ctx, "login", "ramesh@mohil.in", 3, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, remaining)
		assert.Greater(t, ttl, time.Duration(0))
	}

	remaining, _, err := repo.Consume(ctx, "login", "ramesh@mohil.in", 3, time.Minute)
	require.ErrorIs(t, err, store.ErrRateLimited)
	assert.Equal(t, int64(0), remaining)

	// 其他帳號不受影響
	_, _, err = repo.Consume(ctx, "login", "suresh@mohil.in", 3, time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	remaining, _, err = repo.Consume(ctx, "login", "ramesh@mohil.in", 3, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), remaining)
}

func TestRateLimiterRepository_Reset(t *testing.T) {
	mr, redisClient := setupRedis(t)
	repo := NewRateLimiterRepository(nil, redisClient)
	ctx := context.Background()

	_, _, err := repo.Consume(ctx, "login", "a@mohil.in", 1, time.Minute)
	require.NoError(t, err)
	_, _, err = repo.Consume(ctx, "login", "a@mohil.in", 1, time.Minute)
	require.ErrorIs(t, err, store.ErrRateLimited)

	remaining, err := repo.Remaining(ctx, "login", "a@mohil.in", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)

	remaining, err = repo.Remaining(ctx, "login", "fresh@mohil.in", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), remaining)

	require.NoError(t, repo.Reset(ctx, "login", "a@mohil.in"))
	assert.False(t, mr.Exists("mohil:login:a@mohil.in"))

	_, _, err = repo.Consume(ctx, "login", "a@mohil.in", 1, time.Minute)
	require.NoError(t, err)
}

func TestIdempotencyRepository(t *testing.T) {
	mr, redisClient := setupRedis(t)
	repo := NewIdempotencyRepository(nil, redisClient)
	ctx := context.Background()

	ok, err := repo.Reserve(ctx, "user-1", "abc", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, mr.Exists("mohil:idem:user-1:abc"))

	ok, err = repo.Reserve(ctx, "user-1", "abc", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Reserve(ctx, "user-2", "abc", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Release(ctx, "user-1", "abc"))
	ok, err = repo.Reserve(ctx, "user-1", "abc", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProvidersFallBackToNoop(t *testing.T) {
	disabled := &client.RedisClient{}
	assert.IsType(t, NoopRateLimiter{}, NewRateLimiter(nil, disabled))
	assert.IsType(t, NoopIdempotencyGuard{}, NewIdempotencyGuard(nil, disabled))

	ok, err := NewIdempotencyGuard(nil, disabled).Reserve(context.Background(), "u", "k", time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	_, redisClient := setupRedis(t)
	assert.IsType(t, &RateLimiterRepository{}, NewRateLimiter(nil, redisClient))
}
