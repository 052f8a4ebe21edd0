package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/growthops/checkin-api/pkg/logger"
)

// StatsCache is a best-effort, short-TTL cache for the dashboard and
// seminar aggregates. Every aggregation pulls the whole relevant slice into
// memory, so shielding the store from repeated reloads is worth a cache
// even at small data sizes. Errors never propagate: a broken cache degrades
// to recomputing.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string, ttl time.Duration) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &StatsCache{rdb: redis.NewClient(opts), ttl: ttl}, nil
}

const (
	DashboardKey     = "stats:dashboard"
	seminarKeyPrefix = "stats:seminar:"
)

func SeminarKey(eventCode string) string {
	return seminarKeyPrefix + eventCode
}

// Get unmarshals a cached value into dest, reporting whether it was found.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WarnContext(ctx, "Stats cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.WarnContext(ctx, "Stats cache decode failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *StatsCache) Set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "Stats cache write failed", "key", key, "error", err)
	}
}

// Invalidate drops cached aggregates after a write. Best-effort.
func (c *StatsCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logger.WarnContext(ctx, "Stats cache invalidation failed", "keys", keys, "error", err)
	}
}

func (c *StatsCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
