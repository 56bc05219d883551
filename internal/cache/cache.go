package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"spartans-cricket-backend/internal/config"
	"spartans-cricket-backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

// Keys for the public read models. Writers delete the matching key.
const (
	KeyApprovedPlayers = "players:approved"
	KeyFixtures        = "matches"
	KeyAchievements    = "achievements"
	KeyClubStats       = "stats"
)

// Cache stores JSON snapshots of public listings.
type Cache interface {
	// GetJSON decodes the cached value into dest and reports whether it was found.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisCache wraps the Redis client
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache creates a new Redis-backed cache
func NewRedisCache(cfg config.CacheConfig) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return NewRedisCacheWithClient(rdb, time.Duration(cfg.TTLSeconds)*time.Second)
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, prefix: "spartans:"}
}

// Ping tests the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.prefix + k
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Noop is used when caching is disabled.
type Noop struct{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any) error         { return nil }
func (Noop) Delete(context.Context, ...string) error            { return nil }

// Fetch is a read-through helper. Cache failures are logged and never fail the read.
func Fetch[T any](ctx context.Context, c Cache, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := c.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.WarnContext(ctx, "Cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	if err := c.SetJSON(ctx, key, value); err != nil {
		logger.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// Invalidate drops keys after a write, logging rather than failing on error.
func Invalidate(ctx context.Context, c Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		logger.WarnContext(ctx, "Cache invalidation failed", "keys", keys, "error", err)
	}
}
