package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	client "github.com/jainam30/mohil-enterprise/internal/database/client"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

// Consume 消耗一次配額；第一次以 SETNX 初始化視窗，之後 DECR。
// 回傳剩餘次數與視窗剩餘時間；超限時回傳 store.ErrRateLimited
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	scope, subject string,
	limitCount int64,
	window time.Duration,
) (remainingCount int64, timeToLive time.Duration, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		// 超限不是系統錯誤，不標記 span
		if returnedError == store.ErrRateLimited {
			endSpan(nil)
			return
		}
		endSpan(returnedError)
	}()

	traceMetadata := core.TraceRateLimitMeta{
		Subject:   subject,
		Scope:     scope,
		Limit:     limitCount,
		WindowSec: int64(window.Seconds()),
		Op:        "consume",
	}
	repository.trace.ApplyTraceAttributes(span, traceMetadata)

	redisKey := repository.buildKey(scope, subject)

	// SETNX key value EX window
	wasSet, setError := repository.client.SetNX(contextValue, redisKey, limitCount-1, window).Result()
	if setError != nil {
		returnedError = setError
		return 0, 0, returnedError
	}
	if wasSet {
		remainingCount = limitCount - 1
		timeToLive = window
		if remainingCount < 0 {
			remainingCount = 0
			returnedError = store.ErrRateLimited
		}
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, int64(timeToLive.Seconds())
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		return remainingCount, timeToLive, returnedError
	}

	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		returnedError = decrError
		return 0, 0, returnedError
	}
	if ttl, _ := repository.client.TTL(contextValue, redisKey).Result(); ttl > 0 {
		timeToLive = ttl
	}

	traceMetadata.TTL = int64(timeToLive.Seconds())
	if newValue < 0 {
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
		returnedError = store.ErrRateLimited
		return 0, timeToLive, returnedError
	}

	remainingCount = newValue
	traceMetadata.Remaining = remainingCount
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, timeToLive, nil
}

// Remaining 查詢目前剩餘次數；尚未初始化時回傳 limitCount
func (repository *RateLimiterRepository) Remaining(
	contextValue context.Context,
	scope, subject string,
	limitCount int64,
) (remainingCount int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceRateLimitMeta{
		Subject: subject,
		Scope:   scope,
		Limit:   limitCount,
		Op:      "get",
	}

	value, getError := repository.client.Get(contextValue, repository.buildKey(scope, subject)).Int64()
	switch {
	case getError == redis.Nil:
		remainingCount = limitCount
	case getError != nil:
		returnedError = getError
		return 0, returnedError
	default:
		remainingCount = max(value, 0)
	}
	traceMetadata.Remaining = remainingCount
	repository.trace.ApplyTraceAttributes(span, traceMetadata)
	return remainingCount, nil
}

// Reset 登入成功後清除計數
func (repository *RateLimiterRepository) Reset(contextValue context.Context, scope, subject string) (returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{
		Subject: subject,
		Scope:   scope,
		Op:      "reset",
	})
	returnedError = repository.client.Del(contextValue, repository.buildKey(scope, subject)).Err()
	return returnedError
}

// buildKey 建構 RateLimiter 用的 Redis key
func (repository *RateLimiterRepository) buildKey(scope, subject string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, scope, subject)
}
