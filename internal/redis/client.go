package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stoper/internal/config"
)

func New(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// JSONCache stores JSON-encoded values under a prefixed key with a TTL.
// A nil client degrades to a no-op cache so callers never have to branch
// on whether redis is configured.
type JSONCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewJSONCache[T any](client *redis.Client, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *JSONCache[T]) key(k string) string {
	return c.prefix + ":" + k
}

func (c *JSONCache[T]) Get(ctx context.Context, k string) (*T, error) {
	if c.client == nil {
		return nil, nil
	}

	value, err := c.client.Get(ctx, c.key(k)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		return nil, fmt.Errorf("unmarshal cached %s: %w", c.prefix, err)
	}

	return &out, nil
}

func (c *JSONCache[T]) Set(ctx context.Context, k string, value *T) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s for cache: %w", c.prefix, err)
	}

	return c.client.Set(ctx, c.key(k), data, c.ttl).Err()
}

func (c *JSONCache[T]) Delete(ctx context.Context, k string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.key(k)).Err()
}

// InsightCache holds the generated advisory text keyed by inventory
// snapshot, so repeated dashboard loads do not re-call the generator.
func InsightCache(client *redis.Client, ttl time.Duration) *JSONCache[string] {
	return NewJSONCache[string](client, "insight", ttl)
}
