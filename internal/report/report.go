// Package report prints the console summary of an analysis run.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rewired-gh/sunwindow/internal/models"
)

// ClockFormat is the layout for sunrise and sunset in the summary.
const ClockFormat = "15:04"

// FormatAverage renders v with the shortest exact representation, keeping
// a ".0" on whole numbers so averages always read as floats. NaN stays "NaN".
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !math.IsNaN(v) && !math.IsInf(v, 0) && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Write prints sunrise, sunset and the three B averages, one per line.
func Write(w io.Writer, sun models.SunTimes, avgs models.WindowAverages) error {
	lines := []string{
		"Sunrise: " + sun.Sunrise.Format(ClockFormat),
		"Sunset: " + sun.Sunset.Format(ClockFormat),
		"Mean B (sunrise): " + FormatAverage(avgs.Sunrise),
		"Mean B (daytime): " + FormatAverage(avgs.Daytime),
		"Mean B (sunset): " + FormatAverage(avgs.Sunset),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
