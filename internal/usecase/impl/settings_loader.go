package impl

import (
	"context"
	"log/slog"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/usecase"
)

type settingsLoader struct {
	shared repository.SharedProfileRepository
	logger *slog.Logger
}

// NewSettingsLoader creates the settings use case.
func NewSettingsLoader(shared repository.SharedProfileRepository, logger *slog.Logger) usecase.SettingsUsecase {
	return &settingsLoader{
		shared: shared,
		logger: logger,
	}
}

// LoadSettings reads the mode toggles from one snapshot of the shared profile so a
// request never mixes toggles from two different store states.
func (l *settingsLoader) LoadSettings(ctx context.Context) (entity.Settings, error) {
	values, err := l.shared.Snapshot(ctx)
	if err != nil {
		return entity.Settings{}, errors.Wrap(err, "load shared profile snapshot")
	}

	settings := entity.SettingsFromValues(values)

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).Debug("Loaded settings",
		slog.Bool("multi_location", settings.MultiLocation),
		slog.Bool("shares_business_info", settings.SharesBusinessInfo()),
		slog.Bool("shares_opening_hours", settings.SharesOpeningHours()),
	)

	return settings, nil
}
