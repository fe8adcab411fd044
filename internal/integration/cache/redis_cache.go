// Package cache implements the dashboard score cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/goal-tracker/backend/internal/application/adapter"
)

// DefaultPrefix namespaces every key written by the score cache.
const DefaultPrefix = "goal-tracker:"

const (
	scanBatch = 100

	// generationKey sits outside the dashboard:* pattern so Invalidate keeps it.
	generationKey = "dashboard-generation"
)

// RedisScoreCache stores dashboard results as JSON strings.
type RedisScoreCache struct {
	client *redis.Client
	prefix string

	// pending is set while an invalidation could not advance the generation.
	// Generation retries it and fails until it succeeds.
	pending atomic.Bool
}

var _ adapter.ScoreCache = (*RedisScoreCache)(nil)

// NewRedisClient connects to the Redis server at url, e.g.
// redis://localhost:6379/0, and checks it answers.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewRedisScoreCache creates a score cache on client. An empty prefix uses
// DefaultPrefix.
func NewRedisScoreCache(client *redis.Client, prefix string) *RedisScoreCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisScoreCache{
		client: client,
		prefix: prefix,
	}
}

// Generation implements adapter.ScoreCache. A generation that was never
// advanced reads as 0.
func (c *RedisScoreCache) Generation(ctx context.Context) (int64, error) {
	if c.pending.Load() {
		if err := c.Invalidate(ctx); err != nil {
			return 0, err
		}
	}

	gen, err := c.client.Get(ctx, c.prefix+generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return gen, nil
}

// Get implements adapter.ScoreCache.
func (c *RedisScoreCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// Set implements adapter.ScoreCache.
func (c *RedisScoreCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Invalidate advances the generation, then removes every dashboard entry
// under the cache prefix. Entries written later under an older generation are
// never read again and expire with their ttl.
func (c *RedisScoreCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.prefix+generationKey).Err(); err != nil {
		c.pending.Store(true)
		return fmt.Errorf("failed to advance cache generation: %w", err)
	}
	c.pending.Store(false)

	iter := c.client.Scan(ctx, 0, c.prefix+"dashboard:*", scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached scores: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached scores: %w", err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete cached scores: %w", err)
		}
	}
	return nil
}

// Ping reports whether the Redis server answers.
func (c *RedisScoreCache) Ping(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}
