// Package cache stores computed analytics responses for a short time.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gamelibrary/backend/internal/config"
)

const keyPrefix = "gamelibrary:"

// Cache is a JSON value store with expiry.
type Cache interface {
	// Get decodes the value stored under key into dest. It reports false
	// when the key is absent.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// Noop never stores anything. It is used when no Redis is configured.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) Set(context.Context, string, any) error         { return nil }

// Redis is a Cache backed by a Redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis server named in cfg and verifies it.
func NewRedis(ctx context.Context, cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return NewRedisWithClient(client, cfg.CacheTTL), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decoding cached %s: %w", key, err)
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
