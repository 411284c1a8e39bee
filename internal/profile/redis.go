package profile

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter claims a key for a window with SETNX; a key already
// present means the action fired within the window.
type RedisRateLimiter struct {
	rdb *redis.Client
}

func NewRedisRateLimiter(rdb *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, key, "1", window).Result()
}
