package impl

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	mockRepo "locator/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsLoader_LoadSettings(t *testing.T) {
	ctx := context.Background()
	shared := mockRepo.NewMockSharedProfileRepository(t)
	shared.EXPECT().Snapshot(ctx).Return(map[string]string{
		entity.SettingMultiLocation:      "on",
		entity.SettingSingleOrganization: "1",
		entity.SettingShareOpeningHours:  "true",
		entity.SettingShareBusinessInfo:  "off",
		entity.SettingUse24HourFormat:    "yes",
	}, nil)
	loader := NewSettingsLoader(shared, newDiscardLogger())

	settings, err := loader.LoadSettings(ctx)

	require.NoError(t, err)
	assert.True(t, settings.MultiLocation)
	assert.True(t, settings.SharesOpeningHours())
	assert.False(t, settings.SharesBusinessInfo())
	assert.True(t, settings.Use24HourFormat)
}

func TestSettingsLoader_SnapshotError(t *testing.T) {
	ctx := context.Background()
	shared := mockRepo.NewMockSharedProfileRepository(t)
	shared.EXPECT().Snapshot(ctx).Return(nil, errors.New("database is closed"))
	loader := NewSettingsLoader(shared, newDiscardLogger())

	_, err := loader.LoadSettings(ctx)

	assert.ErrorContains(t, err, "database is closed")
}
