package database

import (
	"context"
	"fmt"
	"net"

	"cpn-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the session store and verifies it answers.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
