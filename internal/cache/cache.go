package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
)

// ExportCache memoizes assembled design system exports. It replaces the
// module-level maps of the previous pipeline with an owned object carrying an
// injected TTL and an explicit Clear. Rebuilds for the same key are
// single-flighted.
type ExportCache struct {
	log   *logger.Logger
	local *expirable.LRU[string, []byte]
	redis RedisLayer
	ttl   time.Duration
	group singleflight.Group
}

// RedisLayer is the optional shared second level. Nil means local-only.
type RedisLayer interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Purge(ctx context.Context) error
}

func NewExportCache(baseLog *logger.Logger, size int, ttl time.Duration, redis RedisLayer) *ExportCache {
	if size <= 0 {
		size = 128
	}
	return &ExportCache{
		log:   baseLog.With("cache", "ExportCache"),
		local: expirable.NewLRU[string, []byte](size, nil, ttl),
		redis: redis,
		ttl:   ttl,
	}
}

// GetOrBuild returns the cached payload for key, building it at most once
// per flight when absent.
func (c *ExportCache) GetOrBuild(ctx context.Context, key string, build func(context.Context) ([]byte, error)) ([]byte, error) {
	if blob, ok := c.local.Get(key); ok {
		return blob, nil
	}
	if c.redis != nil {
		blob, ok, err := c.redis.Get(ctx, key)
		if err != nil {
			c.log.Warn("Redis cache read failed, falling through", "key", key, "error", err)
		} else if ok {
			c.local.Add(key, blob)
			return blob, nil
		}
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		blob, err := build(ctx)
		if err != nil {
			return nil, err
		}
		c.local.Add(key, blob)
		if c.redis != nil {
			if err := c.redis.Set(ctx, key, blob, c.ttl); err != nil {
				c.log.Warn("Redis cache write failed", "key", key, "error", err)
			}
		}
		return blob, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

// Invalidate drops one key from every layer.
func (c *ExportCache) Invalidate(ctx context.Context, key string) {
	c.local.Remove(key)
	if c.redis != nil {
		if err := c.redis.Del(ctx, key); err != nil {
			c.log.Warn("Redis cache delete failed", "key", key, "error", err)
		}
	}
}

// Clear empties the cache entirely.
func (c *ExportCache) Clear(ctx context.Context) {
	c.local.Purge()
	if c.redis != nil {
		if err := c.redis.Purge(ctx); err != nil {
			c.log.Warn("Redis cache purge failed", "error", err)
		}
	}
}
