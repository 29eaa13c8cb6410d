package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"drivehub-admin-backend/internal/platform/redis"
)

// Cache is the read-cache surface used by the feature services. The
// service never persists durable data; everything here carries a TTL.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePattern(ctx context.Context, pattern string) error
}

type redisCache struct {
	client *redis.Client
}

func New(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.client.Set(ctx, key, string(data), ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) DeletePattern(ctx context.Context, pattern string) error {
	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.client.Del(ctx, keys...).Err()
	}

	return nil
}

// DirectoryKey caches one unfiltered gateway user listing. Search and
// sort stay in-process so identical fetches are shared across queries.
func DirectoryKey(role, status string) string {
	return fmt.Sprintf("directory:%s:%s", role, status)
}

// EarningsKey caches one instructor's detailed earnings snapshot.
func EarningsKey(instructorID int64) string {
	return fmt.Sprintf("earnings:%d", instructorID)
}

// InvalidateDirectory drops every cached user listing. Called after any
// mutation that goes through the gateway.
func InvalidateDirectory(ctx context.Context, c Cache) error {
	return c.DeletePattern(ctx, "directory:*")
}
