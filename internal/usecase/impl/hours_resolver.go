package impl

import (
	"context"
	"log/slog"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/usecase"
)

// rawWindow is a day's five sub-fields exactly as stored.
type rawWindow struct {
	from       string
	to         string
	secondFrom string
	secondTo   string
	is24h      string
}

func (w rawWindow) overlay(shared rawWindow) rawWindow {
	return rawWindow{
		from:       overlay(w.from, shared.from),
		to:         overlay(w.to, shared.to),
		secondFrom: overlay(w.secondFrom, shared.secondFrom),
		secondTo:   overlay(w.secondTo, shared.secondTo),
		is24h:      overlay(w.is24h, shared.is24h),
	}
}

type hoursResolver struct {
	source profileSource
	logger *slog.Logger
}

// NewHoursResolver creates the opening-hours resolver.
func NewHoursResolver(
	shared repository.SharedProfileRepository,
	locations repository.LocationRepository,
	logger *slog.Logger,
) usecase.HoursUsecase {
	return &hoursResolver{
		source: newProfileSource(shared, locations),
		logger: logger,
	}
}

func (r *hoursResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// ResolveDay resolves one day's effective window.
func (r *hoursResolver) ResolveDay(ctx context.Context, settings entity.Settings, day entity.Weekday, subject entity.Subject, format24h bool) (*entity.ResolvedDay, error) {
	if !day.Valid() {
		return nil, domainerrors.ErrInvalidWeekday
	}

	locationID := ""
	if settings.MultiLocation {
		id, err := r.source.subjectLocationID(ctx, subject)
		if err != nil {
			return nil, err
		}
		locationID = id
	}

	return r.resolveDay(ctx, settings, day, locationID, format24h)
}

// ResolveWeek resolves every day, presented starting on startOfWeek. The subject
// is resolved once for the whole week.
func (r *hoursResolver) ResolveWeek(ctx context.Context, settings entity.Settings, subject entity.Subject, format24h bool, startOfWeek entity.Weekday) ([]*entity.ResolvedDay, error) {
	locationID := ""
	if settings.MultiLocation {
		id, err := r.source.subjectLocationID(ctx, subject)
		if err != nil {
			return nil, err
		}
		locationID = id
	}

	days := entity.WeekStartingOn(startOfWeek)
	week := make([]*entity.ResolvedDay, 0, len(days))
	for _, day := range days {
		resolved, err := r.resolveDay(ctx, settings, day, locationID, format24h)
		if err != nil {
			return nil, errors.Wrapf(err, "resolve %s", day)
		}
		week = append(week, resolved)
	}

	return week, nil
}

func (r *hoursResolver) resolveDay(ctx context.Context, settings entity.Settings, day entity.Weekday, locationID string, format24h bool) (*entity.ResolvedDay, error) {
	keys := entity.KeysFor(day)

	var (
		raw          rawWindow
		useMultiple  bool
		isOverridden bool
		err          error
	)

	if !settings.MultiLocation {
		raw, err = r.readShared(ctx, keys)
		if err != nil {
			return nil, err
		}
	} else {
		raw, err = r.readOwn(ctx, locationID, keys)
		if err != nil {
			return nil, err
		}

		if settings.SharesOpeningHours() {
			dayOverride, err := r.source.overridden(ctx, locationID, keys.Day)
			if err != nil {
				return nil, err
			}
			isOverridden = dayOverride

			if !dayOverride {
				shared, err := r.readShared(ctx, keys)
				if err != nil {
					return nil, err
				}
				raw = raw.overlay(shared)
			}
		}
	}

	useMultiple, err = r.source.toggle(ctx, settings, locationID, entity.ToggleMultipleTimes)
	if err != nil {
		return nil, err
	}

	window := normalizeWindow(raw)

	r.log(ctx).Debug("Resolved opening window",
		slog.String("day", day.String()),
		slog.String("location_id", locationID),
		slog.String("from", window.From),
		slog.String("to", window.To),
		slog.Bool("is_24h", window.Is24h),
	)

	return &entity.ResolvedDay{
		Day:               day,
		DayName:           day.String(),
		From:              window.From,
		To:                window.To,
		SecondFrom:        window.SecondFrom,
		SecondTo:          window.SecondTo,
		DisplayFrom:       displayClock(window.From, format24h),
		DisplayTo:         displayClock(window.To, format24h),
		DisplaySecondFrom: displayClock(window.SecondFrom, format24h),
		DisplaySecondTo:   displayClock(window.SecondTo, format24h),
		Is24h:             window.Is24h,
		UseMultipleTimes:  useMultiple,
		IsOverridden:      isOverridden,
		Format24h:         format24h,
	}, nil
}

// normalizeWindow drops malformed times, enforces the closed pairing on both
// windows and applies the default window when the day is full-day or empty.
func normalizeWindow(raw rawWindow) entity.OpeningWindow {
	w := entity.OpeningWindow{
		From:       sanitizeClock(raw.from),
		To:         sanitizeClock(raw.to),
		SecondFrom: sanitizeClock(raw.secondFrom),
		SecondTo:   sanitizeClock(raw.secondTo),
		Is24h:      entity.IsAffirmative(raw.is24h),
	}

	if w.From == entity.ClosedMarker || w.To == entity.ClosedMarker {
		w.From, w.To = entity.ClosedMarker, entity.ClosedMarker
	}
	if w.SecondFrom == entity.ClosedMarker || w.SecondTo == entity.ClosedMarker {
		w.SecondFrom, w.SecondTo = entity.ClosedMarker, entity.ClosedMarker
	}

	if w.Is24h || (w.From == "" && w.To == "") {
		w.From, w.To = entity.DefaultOpenTime, entity.DefaultCloseTime
		w.SecondFrom, w.SecondTo = "", ""
	}

	return w
}

func (r *hoursResolver) readShared(ctx context.Context, keys entity.DayKeys) (rawWindow, error) {
	return readWindow(func(key string) (string, error) {
		return r.source.sharedValue(ctx, key)
	}, keys)
}

func (r *hoursResolver) readOwn(ctx context.Context, locationID string, keys entity.DayKeys) (rawWindow, error) {
	return readWindow(func(key string) (string, error) {
		return r.source.ownValue(ctx, locationID, key)
	}, keys)
}

func readWindow(read func(key string) (string, error), keys entity.DayKeys) (rawWindow, error) {
	var (
		w   rawWindow
		err error
	)

	targets := []struct {
		key string
		dst *string
	}{
		{keys.From, &w.from},
		{keys.To, &w.to},
		{keys.SecondFrom, &w.secondFrom},
		{keys.SecondTo, &w.secondTo},
		{keys.Is24h, &w.is24h},
	}
	for _, t := range targets {
		if *t.dst, err = read(t.key); err != nil {
			return rawWindow{}, err
		}
	}

	return w, nil
}
