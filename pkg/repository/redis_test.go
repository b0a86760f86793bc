package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	repo := NewRedisRepositoryWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { _ = repo.Close() })
	return mr, repo
}

func TestRoleCache(t *testing.T) {
	ctx := context.Background()
	mr, repo := newTestRedis(t)
	require.NoError(t, repo.Ping(ctx))

	_, ok, err := repo.GetRole(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetRole(ctx, "a@x.com", "admin"))
	role, ok, err := repo.GetRole(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", role)
	assert.Equal(t, time.Minute, mr.TTL("role:a@x.com"))

	require.NoError(t, repo.InvalidateRole(ctx, "a@x.com"))
	_, ok, err = repo.GetRole(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRoleCacheExpires(t *testing.T) {
	ctx := context.Background()
	mr, repo := newTestRedis(t)

	require.NoError(t, repo.SetRole(ctx, "s@x.com", "seller"))
	mr.FastForward(2 * time.Minute)

	_, ok, err := repo.GetRole(ctx, "s@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}
