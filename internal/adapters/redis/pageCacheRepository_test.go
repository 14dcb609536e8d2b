package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/ports/pagecache"
)

func newTestRepo(t *testing.T) (*PageCacheRepositoryRedis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewPageCacheRepositoryRedis(client, nil), mr
}

func TestPageCacheRepositoryRedis_GetSet(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	t.Run("Missing key is a miss", func(t *testing.T) {
		_, err := repo.Get(ctx, "index_page:1")
		assert.True(t, errors.Is(err, pagecache.ErrMiss))
	})

	t.Run("Stored value is returned under the prefix", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "index_page:1", []byte("page one"), 20*time.Second))

		got, err := repo.Get(ctx, "index_page:1")
		require.NoError(t, err)
		assert.Equal(t, []byte("page one"), got)
		assert.True(t, mr.Exists("pagecache:index_page:1"))
	})

	t.Run("Expired value is a miss", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", []byte("x"), time.Second))
		mr.FastForward(2 * time.Second)

		_, err := repo.Get(ctx, "short")
		assert.True(t, errors.Is(err, pagecache.ErrMiss))
	})

	t.Run("Delete removes one key", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "a", []byte("a"), time.Minute))
		require.NoError(t, repo.Set(ctx, "b", []byte("b"), time.Minute))
		require.NoError(t, repo.Delete(ctx, "a"))

		_, err := repo.Get(ctx, "a")
		assert.True(t, errors.Is(err, pagecache.ErrMiss))
		_, err = repo.Get(ctx, "b")
		assert.NoError(t, err)
	})
}

func TestPageCacheRepositoryRedis_Clear(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		require.NoError(t, repo.Set(ctx, fmt.Sprintf("index_page:%d", i), []byte("x"), time.Minute))
	}
	require.NoError(t, mr.Set("session:keep", "1"))

	require.NoError(t, repo.Clear(ctx))

	keys := mr.Keys()
	assert.Equal(t, []string{"session:keep"}, keys)
}

func TestPageCacheRepositoryRedis_Unavailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil client", func(t *testing.T) {
		repo := NewPageCacheRepositoryRedis(nil, nil)
		_, err := repo.Get(ctx, "k")
		assert.Error(t, err)
		assert.False(t, errors.Is(err, pagecache.ErrMiss))
		assert.Error(t, repo.Set(ctx, "k", []byte("v"), time.Second))
		assert.Error(t, repo.Delete(ctx, "k"))
		assert.Error(t, repo.Clear(ctx))
	})

	t.Run("Server gone", func(t *testing.T) {
		repo, mr := newTestRepo(t)
		mr.Close()

		_, err := repo.Get(ctx, "k")
		assert.Error(t, err)
	})
}
