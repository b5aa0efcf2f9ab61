package usecase

import (
	"context"
	"time"

	"locator/internal/domain/entity"
)

// SettingsUsecase loads the global mode toggles. Callers load them once per
// request and pass the result into every resolver call of that request.
type SettingsUsecase interface {
	LoadSettings(ctx context.Context) (entity.Settings, error)
}

// FieldUsecase resolves business-info fields through the override cascade.
type FieldUsecase interface {
	// ResolveFields returns an entry for every requested field. Unknown fields and
	// fields whose lookup failed come back empty; one field never aborts the others.
	ResolveFields(ctx context.Context, settings entity.Settings, subject entity.Subject, fields []entity.Field) map[entity.Field]string
}

// HoursUsecase resolves opening windows.
type HoursUsecase interface {
	// ResolveDay resolves a single day's effective window.
	ResolveDay(ctx context.Context, settings entity.Settings, day entity.Weekday, subject entity.Subject, format24h bool) (*entity.ResolvedDay, error)

	// ResolveWeek resolves all seven days, presented starting on startOfWeek.
	ResolveWeek(ctx context.Context, settings entity.Settings, subject entity.Subject, format24h bool, startOfWeek entity.Weekday) ([]*entity.ResolvedDay, error)
}

// OpenStateUsecase evaluates whether locations are open at an instant.
type OpenStateUsecase interface {
	// IsOpen never fails: incomplete inputs yield entity.OpenStateUndetermined.
	IsOpen(ctx context.Context, settings entity.Settings, subject entity.Subject, now time.Time) entity.OpenState

	// IsOpenBatch evaluates each location independently and concurrently. With no
	// ids in multi-location mode every stored location is evaluated.
	IsOpenBatch(ctx context.Context, settings entity.Settings, locationIDs []string, now time.Time) map[string]entity.OpenState
}

// ProfileUsecase composes the resolvers into a full effective profile.
type ProfileUsecase interface {
	EffectiveProfile(ctx context.Context, settings entity.Settings, subject entity.Subject, now time.Time) (*entity.EffectiveProfile, error)
}
