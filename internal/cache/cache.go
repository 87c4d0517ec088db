// Package cache is a read-through Redis cache for item lookups. A nil
// *ItemCache is valid and turns every operation into a no-op, so callers
// never branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/exemplar/itemsvc/internal/models"
)

type ItemCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) (*ItemCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &ItemCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (c *ItemCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func (c *ItemCache) Ping(ctx context.Context) error {
	if c == nil {
		return errors.New("cache not configured")
	}
	return c.client.Ping(ctx).Err()
}

func itemKey(id string) string {
	return "item:" + id
}

// Get returns the cached item, or (nil, nil) on a miss. Cache failures are
// reported as misses; the store remains the source of truth.
func (c *ItemCache) Get(ctx context.Context, id string) (*models.Item, error) {
	if c == nil {
		return nil, nil
	}
	payload, err := c.client.Get(ctx, itemKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	item := &models.Item{}
	if err := json.Unmarshal(payload, item); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return item, nil
}

func (c *ItemCache) Set(ctx context.Context, item *models.Item) error {
	if c == nil {
		return nil
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, itemKey(item.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ItemCache) Invalidate(ctx context.Context, id string) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, itemKey(id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
