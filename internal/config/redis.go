package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisClient is nil when REDIS_ADDR is empty.
var RedisClient *redis.Client

// InitRedis connects to Redis. A failed ping is only logged: the client reconnects on
// demand and the page cache treats every failed call as a miss meanwhile.
func InitRedis(ctx context.Context, s Settings) *redis.Client {
	if s.RedisAddr == "" {
		Logger.Warn("REDIS_ADDR is not set, page cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         s.RedisAddr,
		Password:     s.RedisPassword,
		DB:           s.RedisDB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		Logger.Warn("Redis unreachable, serving without page cache", zap.String("addr", s.RedisAddr), zap.Error(err))
	} else {
		Logger.Info("Connected to Redis", zap.String("addr", s.RedisAddr))
	}

	RedisClient = client
	return client
}
