package redis

import (
	"context"
	"encoding/json"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache stores read model projections (account views and the like) in
// Redis as JSON. T is the view type a given instance serves. A zero TTL keeps
// entries until they are explicitly deleted, which is what the account read
// model wants: it is refreshed on every committed write and invalidated on
// deletion, never aged out.
type ViewCache[T any] struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewViewCache[T any](client *goredis.Client, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, ttl: ttl}
}

// Get loads the view stored under key. A miss, a Redis error, and a stale
// undeserialisable entry all report (nil, false); callers fall back to the
// write store and re-warm the key.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, false
	}
	return &v, true
}

// Set writes the view under key. Failures are logged and swallowed; the next
// cold read re-warms the key from the write store.
func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("view cache: failed to marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("view cache: failed to store %s: %v", key, err)
	}
}

// Delete drops the view stored under key, if any.
func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("view cache: failed to delete %s: %v", key, err)
	}
}
