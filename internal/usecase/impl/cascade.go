package impl

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/domain/repository"
	"locator/internal/errors"
)

// layered holds the three tiers of one value: the location's own value, its
// override flag and the shared default.
type layered[T any] struct {
	Own        T
	Overridden bool
	Shared     T
}

// cascade picks the effective tier. The own value wins when sharing is off, when
// the value is excluded from inheritance, or when it is explicitly overridden
// (even if the own value is empty).
func cascade[T any](v layered[T], sharing, excluded bool) T {
	if !sharing || excluded || v.Overridden {
		return v.Own
	}

	return v.Shared
}

// overlay is the sparse per-value fallback: an empty own value reads the shared one.
func overlay(own, shared string) string {
	if own == "" {
		return shared
	}

	return own
}

// profileSource reads raw values for the resolvers. An empty location id is an
// unknown location: every value empty, no overrides.
type profileSource struct {
	shared    repository.SharedProfileRepository
	locations repository.LocationRepository
}

func newProfileSource(shared repository.SharedProfileRepository, locations repository.LocationRepository) profileSource {
	return profileSource{shared: shared, locations: locations}
}

func (s profileSource) sharedValue(ctx context.Context, key string) (string, error) {
	value, err := s.shared.Get(ctx, key, "")
	if err != nil {
		return "", errors.Wrapf(err, "read shared %s", key)
	}

	return value, nil
}

func (s profileSource) ownValue(ctx context.Context, locationID, key string) (string, error) {
	if locationID == "" {
		return "", nil
	}

	value, err := s.locations.GetField(ctx, locationID, key)
	if err != nil {
		return "", errors.Wrapf(err, "read location %s %s", locationID, key)
	}

	return value, nil
}

func (s profileSource) overridden(ctx context.Context, locationID, key string) (bool, error) {
	if locationID == "" {
		return false, nil
	}

	flag, err := s.locations.GetOverrideFlag(ctx, locationID, key)
	if err != nil {
		return false, errors.Wrapf(err, "read override %s %s", locationID, key)
	}

	return flag, nil
}

// layeredValue reads all three tiers of key for a location.
func (s profileSource) layeredValue(ctx context.Context, locationID, key string) (layered[string], error) {
	own, err := s.ownValue(ctx, locationID, key)
	if err != nil {
		return layered[string]{}, err
	}

	flag, err := s.overridden(ctx, locationID, key)
	if err != nil {
		return layered[string]{}, err
	}

	shared, err := s.sharedValue(ctx, key)
	if err != nil {
		return layered[string]{}, err
	}

	return layered[string]{Own: own, Overridden: flag, Shared: shared}, nil
}

// subjectLocationID picks the location whose values are read: an explicit id, then
// a draft key, then the primary location. Empty means "no location".
func (s profileSource) subjectLocationID(ctx context.Context, subject entity.Subject) (string, error) {
	if !subject.IsUnspecified() {
		if subject.LocationID != "" {
			return subject.LocationID, nil
		}

		return subject.DraftID, nil
	}

	primaryID, err := s.locations.FindPrimaryLocationID(ctx)
	if err != nil {
		return "", errors.Wrap(err, "find primary location")
	}

	return primaryID, nil
}

// toggle resolves a location-level boolean through the plain cascade, governed by
// the opening-hours sharing toggle.
func (s profileSource) toggle(ctx context.Context, settings entity.Settings, locationID, key string) (bool, error) {
	if !settings.MultiLocation {
		value, err := s.sharedValue(ctx, key)

		return entity.IsAffirmative(value), err
	}

	v, err := s.layeredValue(ctx, locationID, key)
	if err != nil {
		return false, err
	}

	return entity.IsAffirmative(cascade(v, settings.SharesOpeningHours(), false)), nil
}

// open247 resolves the 24/7 toggle. In multi-location mode with shared opening
// hours a location only counts as overridden when its flag is set and its own
// value is affirmative; otherwise the shared value applies. Single-location mode
// reads the shared value alone.
func (s profileSource) open247(ctx context.Context, settings entity.Settings, locationID string) (bool, error) {
	key := entity.ToggleOpen247
	if !settings.MultiLocation {
		value, err := s.sharedValue(ctx, key)

		return entity.IsAffirmative(value), err
	}

	v, err := s.layeredValue(ctx, locationID, key)
	if err != nil {
		return false, err
	}

	own := entity.IsAffirmative(v.Own)
	if !settings.SharesOpeningHours() {
		return own, nil
	}
	if v.Overridden && own {
		return true, nil
	}

	return entity.IsAffirmative(v.Shared), nil
}
