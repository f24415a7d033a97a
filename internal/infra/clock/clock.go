// Package clock provides time sources for feed evaluation.
package clock

import (
	"time"

	"vitrine/config"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
)

// System reads the wall clock in a fixed location.
type System struct {
	location *time.Location
}

// NewSystem creates a wall clock in the configured feed time zone.
func NewSystem(cfg *config.Config) (service.Clock, error) {
	location, err := Location(cfg)
	if err != nil {
		return nil, err
	}

	return &System{location: location}, nil
}

// Location resolves the configured feed time zone.
// An empty time zone uses the process local time.
func Location(cfg *config.Config) (*time.Location, error) {
	name := ""
	if cfg.Feed != nil {
		name = cfg.Feed.Timezone
	}

	if name == "" {
		return time.Local, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", name)
	}

	return location, nil
}

// Now returns the current time in the clock's location.
func (c *System) Now() time.Time {
	return time.Now().In(c.location)
}

// Fixed always returns the same instant.
type Fixed struct {
	instant time.Time
}

// NewFixed creates a clock frozen at instant.
func NewFixed(instant time.Time) *Fixed {
	return &Fixed{instant: instant}
}

// Now returns the frozen instant.
func (c *Fixed) Now() time.Time {
	return c.instant
}
