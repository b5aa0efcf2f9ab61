package repository

import (
	"context"

	"locator/internal/domain/entity"
	"locator/internal/errors"
)

// ErrLocationNotFound is returned by FindLocation when no location has the given id.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository reads per-location key/value records.
// Unknown location ids behave as locations with every field empty and no overrides.
type LocationRepository interface {
	// GetField returns the location's own value for key, empty when unset.
	GetField(ctx context.Context, locationID, key string) (string, error)

	// GetOverrideFlag reports whether the location explicitly overrides key.
	// The flag is stored under entity.OverrideKey(key).
	GetOverrideFlag(ctx context.Context, locationID, key string) (bool, error)

	// FindLocation returns the location record with its categories.
	FindLocation(ctx context.Context, locationID string) (*entity.Location, error)

	// FindPrimaryLocationID returns the id of the primary location, empty when none is designated.
	FindPrimaryLocationID(ctx context.Context) (string, error)

	// ListLocationIDs returns the ids of every stored location.
	ListLocationIDs(ctx context.Context) ([]string, error)

	// FindCategories returns the categories associated with a location.
	FindCategories(ctx context.Context, locationID string) ([]string, error)
}
