// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
// Every repository here is read-only from the point of view of this service.
package repository

import "context"

// SharedProfileRepository reads the organization-wide default profile: one flat
// key/value namespace holding shared business fields, shared opening hours and the
// global mode toggles.
type SharedProfileRepository interface {
	// Get returns the value stored under key, or def when the key is absent.
	// A missing key is never an error.
	Get(ctx context.Context, key, def string) (string, error)

	// Snapshot returns every stored key/value pair.
	Snapshot(ctx context.Context) (map[string]string, error)
}
