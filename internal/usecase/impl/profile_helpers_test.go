package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
	_ "time/tzdata"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(batchConcurrency int, startOfWeek string) *config.Config {
	return &config.Config{
		Profile: &config.ProfileConfig{
			BatchConcurrency: batchConcurrency,
			StartOfWeek:      startOfWeek,
		},
	}
}

var (
	singleLocation = entity.Settings{}

	sharedOrganization = entity.Settings{
		MultiLocation:      true,
		SingleOrganization: true,
		ShareBusinessInfo:  true,
		ShareOpeningHours:  true,
	}

	independentLocations = entity.Settings{MultiLocation: true}
)

// sharedStore is an in-memory shared profile.
type sharedStore map[string]string

func (s sharedStore) Get(_ context.Context, key, def string) (string, error) {
	if v, ok := s[key]; ok {
		return v, nil
	}

	return def, nil
}

func (s sharedStore) Snapshot(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s))
	for k, v := range s {
		out[k] = v
	}

	return out, nil
}

// locationStore is an in-memory location store keyed by location id then key.
type locationStore struct {
	primary    string
	values     map[string]map[string]string
	categories map[string][]string
}

func newLocationStore() *locationStore {
	return &locationStore{
		values:     map[string]map[string]string{},
		categories: map[string][]string{},
	}
}

func (s *locationStore) set(locationID string, kv map[string]string) *locationStore {
	if s.values[locationID] == nil {
		s.values[locationID] = map[string]string{}
	}
	for k, v := range kv {
		s.values[locationID][k] = v
	}

	return s
}

func (s *locationStore) GetField(_ context.Context, locationID, key string) (string, error) {
	return s.values[locationID][key], nil
}

func (s *locationStore) GetOverrideFlag(_ context.Context, locationID, key string) (bool, error) {
	return entity.IsAffirmative(s.values[locationID][entity.OverrideKey(key)]), nil
}

func (s *locationStore) FindLocation(_ context.Context, locationID string) (*entity.Location, error) {
	if _, ok := s.values[locationID]; !ok {
		return nil, repository.ErrLocationNotFound
	}

	return &entity.Location{
		ID:         locationID,
		IsPrimary:  locationID == s.primary,
		Categories: s.categories[locationID],
	}, nil
}

func (s *locationStore) FindPrimaryLocationID(_ context.Context) (string, error) {
	return s.primary, nil
}

func (s *locationStore) ListLocationIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *locationStore) FindCategories(_ context.Context, locationID string) ([]string, error) {
	return s.categories[locationID], nil
}

type systemZones struct{}

func (systemZones) LoadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

type recordingObserver struct {
	mu     sync.Mutex
	states []entity.OpenState
}

func (o *recordingObserver) ObserveOpenState(state entity.OpenState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.states = append(o.states, state)
}

// week sets the same primary window on every day.
func week(from, to string) map[string]string {
	kv := map[string]string{}
	for _, day := range entity.Weekdays() {
		keys := entity.KeysFor(day)
		kv[keys.From] = from
		kv[keys.To] = to
	}

	return kv
}

func merge(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}

// resolvers wires the real resolvers over in-memory stores.
type resolvers struct {
	fields    *fieldResolver
	hours     *hoursResolver
	openState *openStateEvaluator
	observer  *recordingObserver
}

func newResolvers(shared repository.SharedProfileRepository, locations repository.LocationRepository) resolvers {
	logger := newDiscardLogger()
	fields := NewFieldResolver(shared, locations, logger)
	hours := NewHoursResolver(shared, locations, logger)
	observer := &recordingObserver{}
	openState := NewOpenStateEvaluator(shared, locations, fields, hours, systemZones{}, observer, newTestConfig(2, "monday"), logger)

	return resolvers{
		fields:    fields.(*fieldResolver),
		hours:     hours.(*hoursResolver),
		openState: openState.(*openStateEvaluator),
		observer:  observer,
	}
}

// monday returns 2024-01-01 (a Monday) at hh:mm in loc.
func monday(hh, mm int, loc *time.Location) time.Time {
	return time.Date(2024, time.January, 1, hh, mm, 0, 0, loc)
}
