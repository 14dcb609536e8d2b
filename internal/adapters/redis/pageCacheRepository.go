package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"yatube/internal/ports/pagecache"
)

const defaultKeyPrefix = "pagecache:"

var errNoClient = errors.New("redis client not configured")

// PageCacheRepositoryRedis keeps rendered pages as plain Redis strings with an expiry.
type PageCacheRepositoryRedis struct {
	Client *redis.Client
	Prefix string
	Logger *zap.Logger
}

// NewPageCacheRepositoryRedis accepts a nil client; every call then fails and the
// page cache falls back to rendering.
func NewPageCacheRepositoryRedis(client *redis.Client, logger *zap.Logger) *PageCacheRepositoryRedis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageCacheRepositoryRedis{
		Client: client,
		Prefix: defaultKeyPrefix,
		Logger: logger,
	}
}

func (r *PageCacheRepositoryRedis) Get(ctx context.Context, key string) ([]byte, error) {
	if r.Client == nil {
		return nil, errNoClient
	}
	value, err := r.Client.Get(ctx, r.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, pagecache.ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *PageCacheRepositoryRedis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if r.Client == nil {
		return errNoClient
	}
	return r.Client.Set(ctx, r.Prefix+key, value, ttl).Err()
}

func (r *PageCacheRepositoryRedis) Delete(ctx context.Context, key string) error {
	if r.Client == nil {
		return errNoClient
	}
	return r.Client.Del(ctx, r.Prefix+key).Err()
}

// Clear removes every key under Prefix, scanning in batches so it never blocks Redis.
func (r *PageCacheRepositoryRedis) Clear(ctx context.Context) error {
	if r.Client == nil {
		return errNoClient
	}

	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, r.Prefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.Client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			removed += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	r.Logger.Info("Page cache cleared", zap.String("prefix", r.Prefix), zap.Int("keys", removed))
	return nil
}
