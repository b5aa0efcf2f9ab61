// Package clock provides the wall clock and the IANA timezone database.
package clock

import (
	"strings"
	"time"
	// Embedded zone data keeps timezone resolution working in minimal images.
	_ "time/tzdata"

	"locator/internal/domain/service"
	"locator/internal/errors"
)

type systemClock struct{}

// NewClock returns the system clock.
func NewClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type zoneDatabase struct{}

// NewTimezoneProvider returns a provider backed by the IANA database.
func NewTimezoneProvider() service.TimezoneProvider {
	return zoneDatabase{}
}

// LoadLocation resolves an IANA zone name. Empty names are rejected rather than
// read as UTC, and "Local" is rejected because it depends on the host.
func (zoneDatabase) LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Local" {
		return nil, errors.Errorf("invalid timezone %q", name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", name)
	}

	return loc, nil
}
