// Package redis provides a Redis-backed completion cache.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

// Ensure CompletionCache implements the interface.
var _ driven.CompletionCache = (*CompletionCache)(nil)

// Default configuration values.
const (
	DefaultPrefix = "foodiespot:completion:"
	pingTimeout   = 2 * time.Second
)

// Config holds connection settings.
type Config struct {
	// Addr is host:port of the Redis server (required).
	Addr string

	// Password is optional.
	Password string

	// DB is the database number (default 0).
	DB int

	// Prefix namespaces every key (default: foodiespot:completion:).
	Prefix string
}

// client is the subset of *redis.Client the cache uses.
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Close() error
}

// CompletionCache stores completions as plain string values with a TTL.
type CompletionCache struct {
	client client
	prefix string
}

// NewCompletionCache connects to Redis and verifies the server answers a PING.
func NewCompletionCache(ctx context.Context, cfg Config) (*CompletionCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", cfg.Addr, err)
	}

	return newCompletionCache(rdb, cfg.Prefix), nil
}

func newCompletionCache(c client, prefix string) *CompletionCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &CompletionCache{client: c, prefix: prefix}
}

// Get returns the cached completion. A missing key is not an error.
func (c *CompletionCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set stores value for ttl. A non-positive ttl keeps the key until evicted.
func (c *CompletionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (c *CompletionCache) Close() error {
	return c.client.Close()
}
