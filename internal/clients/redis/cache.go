// Package redis provides the best-effort read-through cache used for
// curriculum reads and feedback stats. Every helper tolerates a nil client
// and swallows redis failures after logging them; a cache outage must never
// fail a request.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/cyclerise/cyclerise-backend/internal/logger"
)

const (
	SubjectsByBranchTTL = 24 * time.Hour
	SubjectDetailTTL    = 24 * time.Hour
	FeedbackStatsTTL    = time.Hour
)

type Cache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// NewCache connects and pings. url uses the redis:// scheme.
func NewCache(log *logger.Logger, url string) (*Cache, error) {
	if url == "" {
		return nil, fmt.Errorf("missing redis url")
	}
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{log: log.With("client", "RedisCache"), rdb: rdb}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetJSON unmarshals the cached value into dest. Returns false on miss or on
// any redis/decode failure.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Redis GET failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Bad cached payload, dropping", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("Redis SET failed", "key", key, "error", err)
	}
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Redis DEL failed", "keys", keys, "error", err)
	}
}

// DeleteByPattern removes every key matching a glob pattern, e.g.
// "subjects:CSE:*".
func (c *Cache) DeleteByPattern(ctx context.Context, pattern string) {
	if c == nil || c.rdb == nil {
		return
	}
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		c.log.Warn("Redis KEYS failed", "pattern", pattern, "error", err)
		return
	}
	if len(keys) > 0 {
		c.Delete(ctx, keys...)
	}
}
