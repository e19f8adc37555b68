//go:build integration

package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// InitRedisContainer starts a Redis container and exports its address as REDIS_ADDR.
type InitRedisContainer struct {
	container *tcredis.RedisContainer
}

func (i *InitRedisContainer) Initialize(ctx context.Context) (context.Context, error) {
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		return ctx, fmt.Errorf("start redis container: %w", err)
	}
	i.container = container

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return ctx, err
	}
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return ctx, err
	}
	if err := os.Setenv("REDIS_ADDR", opts.Addr); err != nil {
		return ctx, err
	}
	return ctx, nil
}

func (i *InitRedisContainer) Close() {
	if i.container == nil {
		return
	}
	cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := i.container.Terminate(cancelCtx); err != nil {
		log.Printf("failed to stop redis container: %v", err)
	}
}

// initEnvVars exports fixed environment variables before the application initializers run.
type initEnvVars struct {
	envVars map[string]string
}

func (i initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}
