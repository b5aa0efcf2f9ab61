package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"locator/config"
	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const defaultBatchConcurrency = 8

type openStateEvaluator struct {
	source           profileSource
	fields           usecase.FieldUsecase
	hours            usecase.HoursUsecase
	zones            service.TimezoneProvider
	observer         service.OpenStateObserver
	batchConcurrency int
	logger           *slog.Logger
}

// NewOpenStateEvaluator creates the open-state evaluator. observer may be nil.
func NewOpenStateEvaluator(
	shared repository.SharedProfileRepository,
	locations repository.LocationRepository,
	fields usecase.FieldUsecase,
	hours usecase.HoursUsecase,
	zones service.TimezoneProvider,
	observer service.OpenStateObserver,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OpenStateUsecase {
	concurrency := defaultBatchConcurrency
	if cfg != nil && cfg.Profile != nil && cfg.Profile.BatchConcurrency > 0 {
		concurrency = cfg.Profile.BatchConcurrency
	}

	return &openStateEvaluator{
		source:           newProfileSource(shared, locations),
		fields:           fields,
		hours:            hours,
		zones:            zones,
		observer:         observer,
		batchConcurrency: concurrency,
		logger:           logger,
	}
}

func (e *openStateEvaluator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// IsOpen evaluates the subject's open state at now.
func (e *openStateEvaluator) IsOpen(ctx context.Context, settings entity.Settings, subject entity.Subject, now time.Time) entity.OpenState {
	state := e.evaluate(ctx, settings, subject, now)
	if e.observer != nil {
		e.observer.ObserveOpenState(state)
	}

	return state
}

// IsOpenBatch evaluates every location concurrently. Results carry no ordering and
// a failed location only affects its own entry. An empty id list in multi-location
// mode evaluates every stored location.
func (e *openStateEvaluator) IsOpenBatch(ctx context.Context, settings entity.Settings, locationIDs []string, now time.Time) map[string]entity.OpenState {
	if len(locationIDs) == 0 && settings.MultiLocation {
		ids, err := e.source.locations.ListLocationIDs(ctx)
		if err != nil {
			e.log(ctx).Warn("Failed to list locations for batch evaluation", slog.Any("error", err))

			return map[string]entity.OpenState{}
		}
		locationIDs = ids
	}

	var (
		mu     sync.Mutex
		g      errgroup.Group
		result = make(map[string]entity.OpenState, len(locationIDs))
	)
	g.SetLimit(e.batchConcurrency)

	for _, id := range locationIDs {
		g.Go(func() error {
			state := e.IsOpen(ctx, settings, entity.Subject{LocationID: id}, now)

			mu.Lock()
			result[id] = state
			mu.Unlock()

			return nil
		})
	}
	_ = g.Wait()

	return result
}

func (e *openStateEvaluator) evaluate(ctx context.Context, settings entity.Settings, subject entity.Subject, now time.Time) entity.OpenState {
	logger := e.log(ctx).With(slog.String("location_id", subject.LocationID))

	zone := strings.TrimSpace(e.fields.ResolveFields(ctx, settings, subject, []entity.Field{entity.FieldTimezone})[entity.FieldTimezone])
	if zone == "" {
		logger.Debug("No timezone configured, open state undetermined")

		return entity.OpenStateUndetermined
	}

	loc, err := e.zones.LoadLocation(zone)
	if err != nil || loc == nil {
		logger.Warn("Unknown timezone, open state undetermined",
			slog.String("timezone", zone),
			slog.Any("error", err),
		)

		return entity.OpenStateUndetermined
	}
	local := now.In(loc)

	locationID := ""
	if settings.MultiLocation {
		if locationID, err = e.source.subjectLocationID(ctx, subject); err != nil {
			logger.Warn("Failed to resolve subject location", slog.Any("error", err))

			return entity.OpenStateUndetermined
		}
	}

	always, err := e.source.open247(ctx, settings, locationID)
	if err != nil {
		logger.Warn("Failed to resolve 24/7 toggle", slog.Any("error", err))

		return entity.OpenStateUndetermined
	}
	if always {
		return entity.OpenStateOpen
	}

	day, err := e.hours.ResolveDay(ctx, settings, entity.WeekdayOf(local), subject, true)
	if err != nil {
		logger.Warn("Failed to resolve opening window", slog.Any("error", err))

		return entity.OpenStateUndetermined
	}

	return dayState(day, minuteOfDay(local))
}

// dayState combines the windows of a resolved day: any open window wins, then any
// window that could not be read, otherwise closed.
func dayState(day *entity.ResolvedDay, minute int) entity.OpenState {
	if day.Is24h {
		return entity.OpenStateOpen
	}

	states := []entity.OpenState{windowState(day.From, day.To, minute)}
	if day.UseMultipleTimes {
		states = append(states, windowState(day.SecondFrom, day.SecondTo, minute))
	}

	result := entity.OpenStateClosed
	for _, state := range states {
		switch state {
		case entity.OpenStateOpen:
			return entity.OpenStateOpen
		case entity.OpenStateUndetermined:
			result = entity.OpenStateUndetermined
		}
	}

	return result
}

// windowState checks minute against [from, to], both bounds inclusive. Windows that
// wrap past midnight never match.
func windowState(from, to string, minute int) entity.OpenState {
	if from == entity.ClosedMarker || to == entity.ClosedMarker {
		return entity.OpenStateClosed
	}
	if from == "" && to == "" {
		return entity.OpenStateClosed
	}

	start, okStart := parseClock(from)
	end, okEnd := parseClock(to)
	if !okStart || !okEnd {
		return entity.OpenStateUndetermined
	}

	return entity.OpenStateOf(start <= minute && minute <= end)
}
