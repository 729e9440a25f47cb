package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config captures the settings for the Redis connection backing the login
// throttle counters.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds a Redis client and verifies connectivity with a ping before
// handing it out. Counters are best-effort, but a dead Redis at startup is a
// configuration error worth failing fast on.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
