package impl

import (
	"context"
	"log/slog"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/usecase"
)

type fieldResolver struct {
	source profileSource
	logger *slog.Logger
}

// NewFieldResolver creates the business-info field resolver.
func NewFieldResolver(
	shared repository.SharedProfileRepository,
	locations repository.LocationRepository,
	logger *slog.Logger,
) usecase.FieldUsecase {
	return &fieldResolver{
		source: newProfileSource(shared, locations),
		logger: logger,
	}
}

func (r *fieldResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// ResolveFields resolves each requested field. In single-location mode the shared
// profile is the one implicit location and the subject is ignored.
func (r *fieldResolver) ResolveFields(ctx context.Context, settings entity.Settings, subject entity.Subject, fields []entity.Field) map[entity.Field]string {
	result := make(map[entity.Field]string, len(fields))

	locationID := ""
	if settings.MultiLocation {
		id, err := r.source.subjectLocationID(ctx, subject)
		if err != nil {
			r.log(ctx).Warn("Failed to resolve subject location, reading as unknown location",
				slog.Any("error", err),
				slog.String("location_id", subject.LocationID),
			)
		}
		locationID = id
	}

	for _, field := range fields {
		value, err := r.resolveField(ctx, settings, locationID, field)
		if err != nil {
			r.log(ctx).Warn("Failed to resolve field",
				slog.Any("error", err),
				slog.String("field", string(field)),
				slog.String("location_id", locationID),
			)
			value = ""
		}
		result[field] = value
	}

	return result
}

func (r *fieldResolver) resolveField(ctx context.Context, settings entity.Settings, locationID string, field entity.Field) (string, error) {
	if !field.IsKnown() {
		return "", nil
	}

	if !settings.MultiLocation {
		return r.source.sharedValue(ctx, field.Key())
	}

	sharing := settings.SharesBusinessInfo()
	if !sharing || field.IsPhysical() {
		return r.source.ownValue(ctx, locationID, field.Key())
	}

	v, err := r.source.layeredValue(ctx, locationID, field.Key())
	if err != nil {
		return "", err
	}

	return cascade(v, sharing, field.IsPhysical()), nil
}
