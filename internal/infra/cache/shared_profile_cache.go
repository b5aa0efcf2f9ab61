package cache

import (
	"context"
	"log/slog"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	// SharedProfileKey is the Redis hash holding the shared profile snapshot.
	SharedProfileKey = "locator:shared_profile"

	// loadedField marks a complete snapshot. It cannot collide with a profile key
	// because profile keys never start with an underscore.
	loadedField = "__loaded"

	defaultTTL = 30 * time.Second
)

// SharedProfileParams defines the parameters for the cached shared profile repository
type SharedProfileParams struct {
	fx.In

	Store  repository.SharedProfileRepository `name:"sharedProfileStore"`
	Client *redis.Client                      `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

type sharedProfileCache struct {
	store  repository.SharedProfileRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewSharedProfileRepository wraps the store with a read-through snapshot cache.
// Without a Redis client the store is returned unchanged.
func NewSharedProfileRepository(params SharedProfileParams) repository.SharedProfileRepository {
	if params.Client == nil {
		return params.Store
	}

	ttl := defaultTTL
	if params.Config != nil && params.Config.Redis != nil && params.Config.Redis.SharedProfileTTL > 0 {
		ttl = params.Config.Redis.SharedProfileTTL
	}

	return &sharedProfileCache{
		store:  params.Store,
		client: params.Client,
		ttl:    ttl,
		logger: params.Logger,
	}
}

func (c *sharedProfileCache) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// Get reads one key from the cached snapshot, loading the snapshot on a miss.
func (c *sharedProfileCache) Get(ctx context.Context, key, def string) (string, error) {
	values, err := c.client.HMGet(ctx, SharedProfileKey, loadedField, key).Result()
	if err == nil && values[0] != nil {
		metrics.IncSharedProfileCache(metrics.CacheHit)
		if value, ok := values[1].(string); ok {
			return value, nil
		}

		return def, nil
	}
	c.recordMiss(ctx, err)

	snapshot, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	if value, ok := snapshot[key]; ok {
		return value, nil
	}

	return def, nil
}

// Snapshot returns the cached snapshot, loading it from the store on a miss.
func (c *sharedProfileCache) Snapshot(ctx context.Context) (map[string]string, error) {
	values, err := c.client.HGetAll(ctx, SharedProfileKey).Result()
	if err == nil {
		if _, ok := values[loadedField]; ok {
			metrics.IncSharedProfileCache(metrics.CacheHit)
			delete(values, loadedField)

			return values, nil
		}
	}
	c.recordMiss(ctx, err)

	return c.load(ctx)
}

func (c *sharedProfileCache) recordMiss(ctx context.Context, err error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		metrics.IncSharedProfileCache(metrics.CacheError)
		c.log(ctx).Warn("Shared profile cache read failed, reading the store",
			slog.Any("error", err),
		)

		return
	}

	metrics.IncSharedProfileCache(metrics.CacheMiss)
}

// load reads the store and writes the whole snapshot with a single transaction so
// readers never see a partial hash.
func (c *sharedProfileCache) load(ctx context.Context) (map[string]string, error) {
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load shared profile from store")
	}

	fields := make(map[string]any, len(snapshot)+1)
	for k, v := range snapshot {
		fields[k] = v
	}
	fields[loadedField] = "1"

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, SharedProfileKey)
		pipe.HSet(ctx, SharedProfileKey, fields)
		pipe.Expire(ctx, SharedProfileKey, c.ttl)

		return nil
	})
	if err != nil {
		c.log(ctx).Warn("Failed to write shared profile cache", slog.Any("error", err))
	}

	return snapshot, nil
}
