package pagecacheapp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"yatube/internal/ports/pagecache"
)

// DefaultTTL is how long a rendered home page stays cached.
const DefaultTTL = 20 * time.Second

// PageCache is a read-through cache of rendered pages. A failing store never fails the
// caller: reads degrade to a miss and writes are dropped.
type PageCache struct {
	Store  pagecache.Store
	Logger *zap.Logger
}

func NewPageCache(store pagecache.Store, logger *zap.Logger) *PageCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageCache{Store: store, Logger: logger}
}

// GetOrRender returns the cached bytes for key, or calls render and caches its output for ttl.
// Concurrent misses on the same key each render; the last write wins.
func (c *PageCache) GetOrRender(ctx context.Context, key string, ttl time.Duration, render func() ([]byte, error)) ([]byte, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	cached, err := c.Store.Get(ctx, key)
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, pagecache.ErrMiss):
		c.Logger.Warn("Page cache read failed, rendering", zap.String("key", key), zap.Error(err))
	}

	body, err := render()
	if err != nil {
		return nil, err
	}

	if err := c.Store.Set(ctx, key, body, ttl); err != nil {
		c.Logger.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
	}
	return body, nil
}

// Invalidate drops one cached page.
func (c *PageCache) Invalidate(ctx context.Context, key string) {
	if err := c.Store.Delete(ctx, key); err != nil {
		c.Logger.Warn("Page cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateAll drops every cached page.
func (c *PageCache) InvalidateAll(ctx context.Context) {
	if err := c.Store.Clear(ctx); err != nil {
		c.Logger.Warn("Page cache clear failed", zap.Error(err))
	}
}
