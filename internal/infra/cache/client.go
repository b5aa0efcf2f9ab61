// Package cache keeps a Redis copy of the shared profile so that loading the
// settings and shared values once per request stays cheap.
package cache

import (
	"context"
	"log/slog"

	"locator/config"
	"locator/internal/domain/lifecycle"
	"locator/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams defines the parameters required for the Redis client
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient connects to Redis. It returns a nil client when no address is
// configured; callers then read the database directly.
func NewClient(params ClientParams) (*redis.Client, error) {
	if !params.Config.Redis.Enabled() {
		params.Logger.Info("Redis address not configured, shared profile cache disabled")

		return nil, nil
	}

	cfg := params.Config.Redis
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
