package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "ad-complete"), srv
}

func TestLimiter_Window(t *testing.T) {
	limiter, srv := newLimiter(t)
	ctx := context.Background()
	userID := uuid.New()

	cooling, err := limiter.Cooling(ctx, userID)
	require.NoError(t, err)
	assert.False(t, cooling)

	cooling, err = limiter.Cooling(ctx, userID)
	require.NoError(t, err)
	assert.False(t, cooling, "checking does not start a window")

	require.NoError(t, limiter.Hit(ctx, userID, 5*time.Second))
	assert.True(t, srv.Exists("ad-complete:"+userID.String()))

	cooling, err = limiter.Cooling(ctx, userID)
	require.NoError(t, err)
	assert.True(t, cooling)

	cooling, err = limiter.Cooling(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, cooling, "other users keep their own window")

	srv.FastForward(6 * time.Second)
	cooling, err = limiter.Cooling(ctx, userID)
	require.NoError(t, err)
	assert.False(t, cooling)
}

func TestLimiter_Disabled(t *testing.T) {
	var nilLimiter *Limiter
	assert.NoError(t, nilLimiter.Hit(context.Background(), uuid.New(), time.Second))
	cooling, err := nilLimiter.Cooling(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, cooling)

	noRedis := New(nil, "ad-complete")
	userID := uuid.New()
	assert.NoError(t, noRedis.Hit(context.Background(), userID, time.Second))
	cooling, err = noRedis.Cooling(context.Background(), userID)
	assert.NoError(t, err)
	assert.False(t, cooling)

	limiter, srv := newLimiter(t)
	assert.NoError(t, limiter.Hit(context.Background(), userID, 0))
	assert.False(t, srv.Exists("ad-complete:"+userID.String()))
}

func TestLimiter_RedisDown(t *testing.T) {
	limiter, srv := newLimiter(t)
	srv.Close()

	cooling, err := limiter.Cooling(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.False(t, cooling)
	assert.Error(t, limiter.Hit(context.Background(), uuid.New(), time.Second))
}

func TestNewClient(t *testing.T) {
	srv := miniredis.RunT(t)

	client, err := NewClient(context.Background(), "redis://"+srv.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	_, err = NewClient(context.Background(), "not-a-url")
	assert.Error(t, err)
}
