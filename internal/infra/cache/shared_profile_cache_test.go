package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locator/config"
	"locator/internal/domain/repository"
	mockRepo "locator/internal/mocks/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheFixtures struct {
	repo   repository.SharedProfileRepository
	store  *mockRepo.MockSharedProfileRepository
	server *miniredis.Miniredis
}

func createTestCache(t *testing.T) cacheFixtures {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := mockRepo.NewMockSharedProfileRepository(t)
	repo := NewSharedProfileRepository(SharedProfileParams{
		Store:  store,
		Client: client,
		Config: &config.Config{Redis: &config.RedisConfig{SharedProfileTTL: time.Minute}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return cacheFixtures{repo: repo, store: store, server: server}
}

func TestSharedProfileCache_SnapshotReadThrough(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	snapshot := map[string]string{"use_multiple_locations": "on", "business_name": "Acme"}
	fx.store.EXPECT().Snapshot(ctx).Return(snapshot, nil).Once()

	first, err := fx.repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, first)

	second, err := fx.repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, second)

	assert.Equal(t, time.Minute, fx.server.TTL(SharedProfileKey))
}

func TestSharedProfileCache_GetServesFromSnapshot(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	fx.store.EXPECT().Snapshot(ctx).Return(map[string]string{"business_name": "Acme"}, nil).Once()

	value, err := fx.repo.Get(ctx, "business_name", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", value)

	value, err = fx.repo.Get(ctx, "business_phone", "n/a")
	require.NoError(t, err)
	assert.Equal(t, "n/a", value, "an absent key falls back to the default without reloading")
}

func TestSharedProfileCache_EmptyProfileIsCached(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	fx.store.EXPECT().Snapshot(ctx).Return(map[string]string{}, nil).Once()

	for range 3 {
		values, err := fx.repo.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, values)
	}
}

func TestSharedProfileCache_ExpiryReloads(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	fx.store.EXPECT().Snapshot(ctx).Return(map[string]string{"business_name": "Old"}, nil).Once()
	fx.store.EXPECT().Snapshot(ctx).Return(map[string]string{"business_name": "New"}, nil).Once()

	value, err := fx.repo.Get(ctx, "business_name", "")
	require.NoError(t, err)
	assert.Equal(t, "Old", value)

	fx.server.FastForward(2 * time.Minute)

	value, err = fx.repo.Get(ctx, "business_name", "")
	require.NoError(t, err)
	assert.Equal(t, "New", value)
}

func TestSharedProfileCache_RedisDownFallsBackToStore(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	fx.server.Close()
	fx.store.EXPECT().Snapshot(ctx).Return(map[string]string{"business_name": "Acme"}, nil).Twice()

	value, err := fx.repo.Get(ctx, "business_name", "")
	require.NoError(t, err)
	assert.Equal(t, "Acme", value)

	values, err := fx.repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"business_name": "Acme"}, values)
}

func TestSharedProfileCache_StoreError(t *testing.T) {
	fx := createTestCache(t)
	ctx := context.Background()
	fx.store.EXPECT().Snapshot(ctx).Return(nil, errors.New("connection refused"))

	_, err := fx.repo.Snapshot(ctx)

	assert.ErrorContains(t, err, "connection refused")
	assert.False(t, fx.server.Exists(SharedProfileKey))
}

func TestNewSharedProfileRepository_WithoutClient(t *testing.T) {
	store := mockRepo.NewMockSharedProfileRepository(t)

	repo := NewSharedProfileRepository(SharedProfileParams{Store: store})

	assert.Same(t, store, repo)
}
