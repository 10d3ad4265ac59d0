package ratelimit

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimiter(t *testing.T) RateLimiter {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisRateLimiter(client)
}

func TestRedisRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := setupLimiter(t)
	config := RateLimitConfig{RequestsPerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow("login:10.0.0.1", config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow("login:10.0.0.1", config)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the limit should be denied")
}

func TestRedisRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := setupLimiter(t)
	config := RateLimitConfig{RequestsPerMinute: 1}

	allowed, err := limiter.Allow("login:10.0.0.1", config)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow("login:10.0.0.1", config)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow("login:10.0.0.2", config)
	require.NoError(t, err)
	assert.True(t, allowed, "a different key must not share the window")
}

func TestRedisRateLimiter_ZeroLimitIsUnlimited(t *testing.T) {
	limiter := setupLimiter(t)
	config := RateLimitConfig{}

	for i := 0; i < 20; i++ {
		allowed, err := limiter.Allow("open-key", config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestRedisRateLimiter_DeniedRequestsStillCount(t *testing.T) {
	limiter := setupLimiter(t)
	config := RateLimitConfig{RequestsPerMinute: 2}

	for i := 0; i < 5; i++ {
		_, err := limiter.Allow("login:10.0.0.9", config)
		require.NoError(t, err)
	}

	allowed, err := limiter.Allow("login:10.0.0.9", config)
	require.NoError(t, err)
	assert.False(t, allowed, "a hammered key must stay limited")
}
