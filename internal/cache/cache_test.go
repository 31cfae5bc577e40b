package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamelibrary/backend/internal/config"
)

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", 1))

	var v int
	ok, err := c.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedis(ctx, &config.Config{RedisAddr: "127.0.0.1:1", CacheTTL: time.Minute})
	assert.Error(t, err)
}

func TestRedis_GetPropagatesErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	c := NewRedisWithClient(client, time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	var v map[string]int
	ok, err := c.Get(context.Background(), "analytics:genres", &v)
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "analytics:genres", map[string]int{"RPG": 1}))
}
