package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// Cache is nil when REDIS_ADDR is unset; callers treat a nil client as
// "no caching" and go straight to the database.
var Cache *redis.Client

func InitCache(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, facet caching disabled")
		return
	}

	Cache = client
}
