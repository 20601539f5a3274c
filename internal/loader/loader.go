// Package loader reads a day of RGB sensor readings from CSV.
//
// The file carries a header row and four columns by position: a timestamp
// followed by the R, G and B channels. Channel cells arrive labelled, e.g.
// "B: 42"; the label is discarded and the remainder parsed as an integer.
// Any malformed cell aborts the load; there is no partial recovery.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/models"
)

// Columns are the canonical column names, in file order.
var Columns = []string{"Timestamp", "R", "G", "B"}

// channelSeparator splits the label from the value in a channel cell.
const channelSeparator = ": "

var (
	// ErrMalformedChannel is returned for a channel cell not shaped "<Label>: <int>".
	ErrMalformedChannel = errors.New("malformed channel cell")
	// ErrMalformedTimestamp is returned for a timestamp cell the parser cannot read.
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	// ErrInvalidReading is returned for a well-formed row whose values are out of range.
	ErrInvalidReading = errors.New("invalid reading")
	// ErrNoReadings is returned when the file has a header but no data rows.
	ErrNoReadings = errors.New("no readings in input")
)

// Load opens path and parses it. Naive timestamps are interpreted as wall
// clock time in tz.
func Load(path string, tz *time.Location) (*models.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	series, err := Parse(f, tz)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	logger.Debug("Loaded %d readings from %s", series.Len(), path)
	return series, nil
}

// Parse reads CSV from r into a time-ascending series.
func Parse(r io.Reader, tz *time.Location) (*models.Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNoReadings
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	// The header only fixes the column count; columns are taken by position
	// and renamed to Columns regardless of their spelling in the file.
	logger.Debug("CSV header %q mapped to %v", header, Columns)

	var readings []models.Reading
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csv read error at line %d: %w", line, err)
		}

		reading, err := parseRecord(record, tz)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		readings = append(readings, reading)
	}

	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Timestamp.Before(readings[j].Timestamp)
	})

	return &models.Series{Readings: readings}, nil
}

func parseRecord(record []string, tz *time.Location) (models.Reading, error) {
	ts, err := dateparse.ParseIn(strings.TrimSpace(record[0]), tz)
	if err != nil {
		return models.Reading{}, fmt.Errorf("%w %q: %v", ErrMalformedTimestamp, record[0], err)
	}

	var channels [3]int
	for i := range channels {
		v, err := ParseChannel(record[i+1])
		if err != nil {
			return models.Reading{}, fmt.Errorf("column %s: %w", Columns[i+1], err)
		}
		channels[i] = v
	}

	reading := models.Reading{
		Timestamp: ts,
		R:         channels[0],
		G:         channels[1],
		B:         channels[2],
	}
	if err := reading.Validate(); err != nil {
		return models.Reading{}, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return reading, nil
}

// ParseChannel strips the "<Label>: " prefix from a channel cell and parses
// the remainder as an integer.
func ParseChannel(cell string) (int, error) {
	parts := strings.Split(cell, channelSeparator)
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w %q: missing %q", ErrMalformedChannel, cell, channelSeparator)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrMalformedChannel, cell, err)
	}
	return v, nil
}
