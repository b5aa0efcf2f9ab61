package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/usecase"

	"github.com/paulmach/orb"
)

type profileService struct {
	source      profileSource
	locations   repository.LocationRepository
	fields      usecase.FieldUsecase
	hours       usecase.HoursUsecase
	openState   usecase.OpenStateUsecase
	startOfWeek entity.Weekday
	logger      *slog.Logger
}

// NewProfileService creates the effective profile use case
func NewProfileService(
	shared repository.SharedProfileRepository,
	locations repository.LocationRepository,
	fields usecase.FieldUsecase,
	hours usecase.HoursUsecase,
	openState usecase.OpenStateUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	startOfWeek := entity.Monday
	if cfg != nil && cfg.Profile != nil {
		if day, ok := entity.ParseWeekday(cfg.Profile.StartOfWeek); ok {
			startOfWeek = day
		}
	}

	return &profileService{
		source:      newProfileSource(shared, locations),
		locations:   locations,
		fields:      fields,
		hours:       hours,
		openState:   openState,
		startOfWeek: startOfWeek,
		logger:      logger,
	}
}

func (s *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// EffectiveProfile composes every resolved value of the subject at now.
func (s *profileService) EffectiveProfile(ctx context.Context, settings entity.Settings, subject entity.Subject, now time.Time) (*entity.EffectiveProfile, error) {
	locationID := ""
	if settings.MultiLocation {
		if subject.LocationID != "" {
			if _, err := s.locations.FindLocation(ctx, subject.LocationID); err != nil {
				if errors.Is(err, repository.ErrLocationNotFound) {
					return nil, domainerrors.ErrLocationNotFound.WithDetails(subject.LocationID)
				}

				return nil, errors.Wrap(err, "find location")
			}
		}

		id, err := s.source.subjectLocationID(ctx, subject)
		if err != nil {
			return nil, err
		}
		locationID = id
	}

	fields := s.fields.ResolveFields(ctx, settings, subject, entity.KnownFields())

	week, err := s.hours.ResolveWeek(ctx, settings, subject, settings.Use24HourFormat, s.startOfWeek)
	if err != nil {
		return nil, errors.Wrap(err, "resolve week")
	}

	open247, err := s.source.open247(ctx, settings, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "resolve 24/7 toggle")
	}

	profile := &entity.EffectiveProfile{
		LocationID:  locationID,
		Fields:      fields,
		Week:        week,
		Timezone:    fields[entity.FieldTimezone],
		Open247:     open247,
		Coordinates: coordinates(fields[entity.FieldLatitude], fields[entity.FieldLongitude]),
		OpenState:   s.openState.IsOpen(ctx, settings, subject, now),
		EvaluatedAt: now,
	}

	if locationID != "" && subject.DraftID == "" {
		categories, err := s.locations.FindCategories(ctx, locationID)
		if err != nil {
			s.log(ctx).Warn("Failed to load location categories",
				slog.Any("error", err),
				slog.String("location_id", locationID),
			)
		}
		profile.Categories = categories
	}

	return profile, nil
}

// coordinates returns nil unless both values parse as decimal degrees.
func coordinates(lat, lng string) *orb.Point {
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return nil
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return nil
	}

	return &orb.Point{longitude, latitude}
}
