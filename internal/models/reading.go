// Package models defines the core domain entities for the sunwindow application.
// These models represent RGB sensor readings, the single-day series they form,
// the observing location and the solar boundaries derived for it.
//
// Terminology:
//   - Channel: one of the R, G, B intensities reported per reading (0–255).
//   - Clock time: the time-of-day of an instant, ignoring its calendar date.
package models

import (
	"errors"
	"fmt"
	"time"
)

// MaxChannelValue is the upper bound of a sensor channel intensity.
const MaxChannelValue = 255

// Reading is a single RGB sample taken by the sensor at Timestamp.
type Reading struct {
	Timestamp time.Time `json:"timestamp"`
	R         int       `json:"r"`
	G         int       `json:"g"`
	B         int       `json:"b"`
}

// Validate checks that all reading fields are valid.
func (r *Reading) Validate() error {
	if r.Timestamp.IsZero() {
		return errors.New("reading timestamp must not be zero")
	}
	channels := []struct {
		name  string
		value int
	}{{"R", r.R}, {"G", r.G}, {"B", r.B}}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > MaxChannelValue {
			return fmt.Errorf("channel %s must be between 0 and %d, got %d", ch.name, MaxChannelValue, ch.value)
		}
	}
	return nil
}
