package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache implements usecase.Cache using Redis. Dashboard aggregates are the
// only values stored here; losing them costs a recompute, nothing more.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a new Cache.
func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		prefix: "cache:",
	}
}

// Get retrieves a value by key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, c.prefix+key).Bytes()
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
