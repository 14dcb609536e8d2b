package pagecacheapp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/internal/mocks"
)

type counter struct {
	calls int
	body  string
}

func (c *counter) render() ([]byte, error) {
	c.calls++
	return []byte(fmt.Sprintf("%s #%d", c.body, c.calls)), nil
}

func TestPageCache_GetOrRender(t *testing.T) {
	ctx := context.Background()

	t.Run("Second call within ttl is served from cache", func(t *testing.T) {
		store := mocks.NewMockPageCacheStore()
		cache := NewPageCache(store, nil)
		r := &counter{body: "home"}

		first, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)
		second, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("Invalidate forces a new render", func(t *testing.T) {
		store := mocks.NewMockPageCacheStore()
		cache := NewPageCache(store, nil)
		r := &counter{body: "home"}

		first, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)

		cache.Invalidate(ctx, "home")

		second, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)
		assert.Equal(t, 2, r.calls)
		assert.NotEqual(t, first, second)
	})

	t.Run("InvalidateAll clears every key", func(t *testing.T) {
		store := mocks.NewMockPageCacheStore()
		cache := NewPageCache(store, nil)
		r := &counter{body: "page"}

		_, _ = cache.GetOrRender(ctx, "index_page:1", time.Minute, r.render)
		_, _ = cache.GetOrRender(ctx, "index_page:2", time.Minute, r.render)
		require.Equal(t, 2, store.Len())

		cache.InvalidateAll(ctx)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Expired entry is rendered again", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		store := mocks.NewMockPageCacheStore()
		store.Now = func() time.Time { return now }
		cache := NewPageCache(store, nil)
		r := &counter{body: "home"}

		_, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)

		now = now.Add(19 * time.Second)
		_, err = cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)
		assert.Equal(t, 1, r.calls)

		now = now.Add(2 * time.Second)
		_, err = cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
		require.NoError(t, err)
		assert.Equal(t, 2, r.calls)
	})

	t.Run("Store outage behaves as a permanent miss", func(t *testing.T) {
		store := mocks.NewMockPageCacheStore()
		store.Down = true
		cache := NewPageCache(store, nil)
		r := &counter{body: "home"}

		for i := 1; i <= 3; i++ {
			body, err := cache.GetOrRender(ctx, "home", 20*time.Second, r.render)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("home #%d", i), string(body))
		}
		assert.Equal(t, 3, r.calls)

		assert.NotPanics(t, func() {
			cache.Invalidate(ctx, "home")
			cache.InvalidateAll(ctx)
		})
	})

	t.Run("Render error is returned and not cached", func(t *testing.T) {
		store := mocks.NewMockPageCacheStore()
		cache := NewPageCache(store, nil)
		boom := errors.New("db down")

		_, err := cache.GetOrRender(ctx, "home", time.Minute, func() ([]byte, error) { return nil, boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Zero ttl uses the default", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		store := mocks.NewMockPageCacheStore()
		store.Now = func() time.Time { return now }
		cache := NewPageCache(store, nil)
		r := &counter{body: "home"}

		_, _ = cache.GetOrRender(ctx, "home", 0, r.render)
		now = now.Add(DefaultTTL - time.Second)
		_, _ = cache.GetOrRender(ctx, "home", 0, r.render)
		assert.Equal(t, 1, r.calls)
	})
}
