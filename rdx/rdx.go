package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// JobsListKey caches the public unscoped jobs listing. Every job or bid
// write drops it.
const JobsListKey = "jobs"

// Cache is a thin read-through cache. A nil client disables caching
// without changing any call site; redis errors degrade to a miss.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return &Cache{}
	}
	return &Cache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Get(ctx context.Context, key string) string {
	if c == nil || c.client == nil {
		return ""
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, key, value, ttl)
}

func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, keys...)
}
