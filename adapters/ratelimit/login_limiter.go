// Package ratelimit counts sign-in attempts in Redis with fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "portfolio:login_attempts:"

type RedisLoginLimiter struct {
	client redis.Cmdable
	max    int
	window time.Duration
}

func NewRedisLoginLimiter(client redis.Cmdable, max int, window time.Duration) *RedisLoginLimiter {
	return &RedisLoginLimiter{client: client, max: max, window: window}
}

// Allow increments the attempt counter for key. INCR and EXPIRE NX run in
// one MULTI, so a counter never lives without a TTL and the window starts at
// the first failure, not the last.
func (l *RedisLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := keyPrefix + key
	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("count login attempt: %w", err)
	}
	return incr.Val() <= int64(l.max), nil
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset login attempts: %w", err)
	}
	return nil
}
