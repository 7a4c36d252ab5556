package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// EntityCache is a JSON read-through cache for entity lookups.
// Key format: <entity>:<id>. All methods are nil-receiver safe so the
// read path works unchanged when caching is disabled.
type EntityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewEntityCache creates an EntityCache wrapping the given Redis client.
// A non-positive TTL falls back to defaultCacheTTL.
func NewEntityCache(client *redis.Client, ttl time.Duration) *EntityCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &EntityCache{client: client, ttl: ttl}
}

// Get unmarshals the cached value for key into dest and reports a hit.
func (c *EntityCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode: %w", err)
	}
	return true, nil
}

// Set stores v under key, expiring after the cache TTL.
func (c *EntityCache) Set(ctx context.Context, key string, v any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Invalidate drops the given keys after a write.
func (c *EntityCache) Invalidate(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Key builds the canonical cache key for an entity id.
func Key(entity, id string) string {
	return fmt.Sprintf("%s:%s", entity, id)
}
