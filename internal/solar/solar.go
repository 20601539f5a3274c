// Package solar computes sunrise and sunset for a date and location.
//
// Times come from the NOAA solar position algorithm implemented by
// go-sunrise, converted into the location's timezone. The returned
// boundaries are widened by a display pad: sunrise moves earlier and sunset
// later by the same amount.
package solar

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/models"
)

// DefaultPad is the display pad applied when none is configured.
const DefaultPad = 5 * time.Minute

// ErrNoSunEvent is returned when the sun does not rise or set on the date,
// as happens beyond the polar circles.
var ErrNoSunEvent = errors.New("no sunrise or sunset on this date")

// Source provides padded sunrise/sunset boundaries.
type Source interface {
	SunTimes(date time.Time, loc models.Location) (models.SunTimes, error)
}

// Calculator computes sun times with the NOAA algorithm.
type Calculator struct {
	Pad time.Duration
}

// NewCalculator creates a Calculator with the given pad.
func NewCalculator(pad time.Duration) *Calculator {
	return &Calculator{Pad: pad}
}

// SunTimes returns sunrise minus the pad and sunset plus the pad for the
// calendar date of date at loc, in loc's timezone.
func (c *Calculator) SunTimes(date time.Time, loc models.Location) (models.SunTimes, error) {
	tz, err := loc.TZ()
	if err != nil {
		return models.SunTimes{}, err
	}

	y, m, d := date.Date()
	rise, set := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, y, m, d)
	if rise.IsZero() || set.IsZero() {
		return models.SunTimes{}, fmt.Errorf("%w: %s at %s", ErrNoSunEvent, date.Format(time.DateOnly), loc)
	}

	sun := models.SunTimes{
		Sunrise: rise.In(tz).Add(-c.Pad),
		Sunset:  set.In(tz).Add(c.Pad),
	}
	if err := sun.Validate(); err != nil {
		return models.SunTimes{}, fmt.Errorf("sun times for %s: %w", date.Format(time.DateOnly), err)
	}

	logger.Debug("Sun times for %s at %s: sunrise %s, sunset %s (pad %v)",
		date.Format(time.DateOnly), loc, sun.Sunrise.Format(time.TimeOnly), sun.Sunset.Format(time.TimeOnly), c.Pad)
	return sun, nil
}

// Fixed is a Source returning the same boundaries for every date.
type Fixed models.SunTimes

// SunTimes implements Source.
func (f Fixed) SunTimes(time.Time, models.Location) (models.SunTimes, error) {
	return models.SunTimes(f), nil
}
