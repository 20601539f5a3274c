package models

import (
	"errors"
	"time"
)

// SunTimes holds the display boundaries of daylight: sunrise moved earlier
// and sunset moved later by the solar pad.
type SunTimes struct {
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// Validate checks that both instants are set and sunrise precedes sunset.
func (s *SunTimes) Validate() error {
	if s.Sunrise.IsZero() || s.Sunset.IsZero() {
		return errors.New("sunrise and sunset must both be set")
	}
	if !s.Sunrise.Before(s.Sunset) {
		return errors.New("sunrise must precede sunset")
	}
	return nil
}

// WindowAverages are the mean B values around sunrise (bw), over the
// daytime interval (bavg) and around sunset (bz). Any of them is NaN when
// its window matched no readings.
type WindowAverages struct {
	Sunrise float64 `json:"sunrise"`
	Daytime float64 `json:"daytime"`
	Sunset  float64 `json:"sunset"`
}
