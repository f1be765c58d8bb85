package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreFromClient(client, ttl)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t, 0)

	s, err := store.GetOrCreate(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", s.ID)
	assert.Empty(t, s.LastLocation)

	s.SetLocation("Phú Quốc")
	s.AppendTurn(RoleUser, "đặc sản gì ngon?", 0)
	require.NoError(t, store.Save(ctx, s))

	again, err := store.GetOrCreate(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Phú Quốc", again.LastLocation)
	require.Len(t, again.History, 1)
	assert.Equal(t, RoleUser, again.History[0].Role)
}

func TestRedisStoreCorruptValueYieldsFresh(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStoreFromClient(client, 0)

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "{not json"))

	s, err := store.GetOrCreate(ctx, "bad")
	require.NoError(t, err)
	assert.Equal(t, "bad", s.ID)
	assert.Empty(t, s.History)
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStoreFromClient(client, time.Minute)

	s := &Session{ID: "ttl"}
	require.NoError(t, store.Save(ctx, s))
	assert.Greater(t, mr.TTL(redisKeyPrefix+"ttl"), time.Duration(0))
}
