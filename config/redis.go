package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ConnectRedis returns nil when Redis is not configured or unreachable; the
// product cache then stays disabled.
func ConnectRedis(ctx context.Context, redisURL string) *redis.Client {
	if redisURL == "" {
		log.Info().Msg("REDIS_URL not set, running without cache")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to parse Redis URL, running without cache")
		return nil
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, running without cache")
		client.Close()
		return nil
	}

	log.Info().Msg("Redis connected")
	return client
}
