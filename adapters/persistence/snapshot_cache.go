package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

const snapshotKey = "portfolio:snapshot"

// RedisSnapshotCache stores the marshalled aggregate response. All paths are
// best effort: a cache failure is logged and treated as a miss.
type RedisSnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisSnapshotCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) *RedisSnapshotCache {
	return &RedisSnapshotCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *RedisSnapshotCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return raw, true
}

func (c *RedisSnapshotCache) Set(ctx context.Context, raw []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, snapshotKey).Err(); err != nil {
		c.logger.Warn("snapshot cache invalidation failed", zap.Error(err))
	}
}
