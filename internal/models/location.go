package models

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // timezone lookups must not depend on the host zoneinfo
)

// Location is the observing place used for solar computations.
type Location struct {
	Name      string  `json:"name" mapstructure:"name"`
	Region    string  `json:"region" mapstructure:"region"`
	Timezone  string  `json:"timezone" mapstructure:"timezone"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
}

// Validate checks that all location fields are valid.
func (l *Location) Validate() error {
	if l.Name == "" {
		return errors.New("location name must not be empty")
	}
	if l.Latitude < -90.0 || l.Latitude > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	if l.Longitude < -180.0 || l.Longitude > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	if _, err := l.TZ(); err != nil {
		return err
	}
	return nil
}

// TZ loads the location's IANA timezone.
func (l *Location) TZ() (*time.Location, error) {
	if l.Timezone == "" {
		return nil, errors.New("location timezone must not be empty")
	}
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", l.Timezone, err)
	}
	return tz, nil
}

// String renders the location as "Name, Region".
func (l Location) String() string {
	if l.Region == "" {
		return l.Name
	}
	return l.Name + ", " + l.Region
}
