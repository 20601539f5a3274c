package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrMultipleDays is returned when a series spans more than one calendar date.
var ErrMultipleDays = errors.New("series spans more than one calendar date")

// ErrEmptySeries is returned when a date is requested from a series with no readings.
var ErrEmptySeries = errors.New("series has no readings")

// ClockTime is a time-of-day expressed as the offset from local midnight.
type ClockTime time.Duration

// ClockOf returns the wall-clock time-of-day of t in t's own location.
func ClockOf(t time.Time) ClockTime {
	h, m, s := t.Clock()
	return ClockTime(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

// String formats the clock time as HH:MM:SS.
func (c ClockTime) String() string {
	d := time.Duration(c)
	return fmt.Sprintf("%02d:%02d:%02d", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
}

// Series is the ordered, time-ascending collection of readings for one day.
type Series struct {
	Readings []Reading `json:"readings"`
}

// Len returns the number of readings.
func (s *Series) Len() int {
	return len(s.Readings)
}

// Date returns midnight of the calendar date of the first reading, in that
// reading's location.
func (s *Series) Date() (time.Time, error) {
	if len(s.Readings) == 0 {
		return time.Time{}, ErrEmptySeries
	}
	first := s.Readings[0].Timestamp
	y, m, d := first.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, first.Location()), nil
}

// ValidateSingleDay checks that every reading falls on the date of the first one.
func (s *Series) ValidateSingleDay() error {
	date, err := s.Date()
	if err != nil {
		return err
	}
	y, m, d := date.Date()
	for i, r := range s.Readings {
		ry, rm, rd := r.Timestamp.Date()
		if ry != y || rm != m || rd != d {
			return fmt.Errorf("%w: reading %d at %s, expected %s",
				ErrMultipleDays, i, r.Timestamp.Format(time.DateTime), date.Format(time.DateOnly))
		}
	}
	return nil
}

// Between returns the readings whose clock time lies within [start, end],
// inclusive on both ends. When start is later than end the window wraps
// around midnight.
func (s *Series) Between(start, end ClockTime) []Reading {
	var matched []Reading
	for _, r := range s.Readings {
		c := ClockOf(r.Timestamp)
		var in bool
		if start <= end {
			in = c >= start && c <= end
		} else {
			in = c >= start || c <= end
		}
		if in {
			matched = append(matched, r)
		}
	}
	return matched
}

// MeanB returns the arithmetic mean of the B channel, or NaN for no readings.
func MeanB(readings []Reading) float64 {
	if len(readings) == 0 {
		return math.NaN()
	}
	sum := 0
	for _, r := range readings {
		sum += r.B
	}
	return float64(sum) / float64(len(readings))
}
