// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate collaborators that don't naturally fit within a single entity.
package service

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// TimezoneProvider resolves IANA zone names. An unknown name must come back as an
// error, never a panic.
type TimezoneProvider interface {
	LoadLocation(name string) (*time.Location, error)
}
