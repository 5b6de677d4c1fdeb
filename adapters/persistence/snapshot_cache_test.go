package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wsikandar/portfolio-cms/pkg/logger"
)

func newTestCache(t *testing.T, ttl time.Duration) (*RedisSnapshotCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSnapshotCache(rdb, ttl, logger.NewNop()), mr
}

func TestSnapshotCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx)
	assert.False(t, ok, "empty cache misses")

	payload := []byte(`{"profile":{"name":"x"}}`)
	cache.Set(ctx, payload)

	got, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestSnapshotCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, []byte(`{}`))
	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestSnapshotCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Second)
	ctx := context.Background()

	cache.Set(ctx, []byte(`{}`))
	mr.FastForward(2 * time.Second)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}

func TestSnapshotCache_NilClientIsNoop(t *testing.T) {
	cache := NewRedisSnapshotCache(nil, time.Minute, logger.NewNop())
	ctx := context.Background()

	cache.Set(ctx, []byte(`{}`))
	cache.Invalidate(ctx)
	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}
