package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maintboard/cmmskit/pkg/redis"
)

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "not-a-redis-url",
		ConnectTimeout: time.Second,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrInvalidConnectionURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address, nothing listens there.
	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://192.0.2.1:6379/0",
		RetryAttempts:  1,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 500 * time.Millisecond,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrNotReady)
}
