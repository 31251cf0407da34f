package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a TTL read-through cache in front of the immutable reference
// collections (content and quizzes). Optional: a nil *Cache is a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr, password string, db int, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Cache{client: client, ttl: ttl}, nil
}

func ModuleContentKey(moduleID int) string {
	return fmt.Sprintf("learning:content:module:%d", moduleID)
}

func ModuleQuizKey(moduleID int) string {
	return fmt.Sprintf("learning:quiz:module:%d", moduleID)
}

// GetJSON unmarshals the cached value into dest. Returns false on miss,
// on any redis error, or when the cache is not configured.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetJSON stores value under key with the configured TTL, best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, c.ttl)
}

// Invalidate drops keys after a reference-data write.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

func (c *Cache) Close() {
	if c != nil {
		_ = c.client.Close()
	}
}
