// Package cache provides a JSON cache over Redis. A nil *Cache is valid
// and behaves as a cache that never hits, so callers degrade gracefully
// when Redis is not configured or unreachable.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mybayani/emergency-backend/internal/config"
)

// Cache stores JSON values under a key prefix.
type Cache struct {
	rdb    *redis.Client
	prefix string
	log    *slog.Logger
}

// Connect dials Redis and pings it. It returns nil (and no error) when
// Redis is disabled in config or the ping fails, logging the reason.
func Connect(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) *Cache {
	log := logger.With("adapter", "redis")
	if !cfg.Enabled() {
		log.InfoContext(ctx, "redis disabled, caching off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pctx).Err(); err != nil {
		log.WarnContext(ctx, "redis unreachable, caching off",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()),
		)
		_ = rdb.Close()
		return nil
	}

	log.InfoContext(ctx, "redis connected", slog.String("addr", cfg.Addr))
	return New(rdb, cfg.Prefix, logger)
}

// New wraps an existing client.
func New(rdb *redis.Client, prefix string, logger *slog.Logger) *Cache {
	return &Cache{rdb: rdb, prefix: prefix, log: logger.With("adapter", "redis")}
}

// Key joins parts with ':' under the cache prefix.
func (c *Cache) Key(parts ...string) string {
	p := "cache"
	if c != nil && c.prefix != "" {
		p = c.prefix
	}
	return p + ":" + strings.Join(parts, ":")
}

// GetJSON decodes the value stored at key into dst. It reports whether
// the key was found. Redis and decode errors count as a miss and are logged.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.WarnContext(ctx, "cache decode failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// SetJSON stores v at key with the given TTL. Failures are logged only.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Delete removes keys. Failures are logged only.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.WarnContext(ctx, "cache delete failed", slog.String("error", err.Error()))
	}
}

// Ping checks Redis connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
