// Package window averages the blue channel over windows derived from
// sunrise and sunset.
//
// Three windows are evaluated on wall-clock time only, so they apply to
// every date present in the series:
//
//	sunrise  [sunrise-pad, sunrise+pad]  -> bw
//	daytime  [sunrise, sunset]           -> bavg
//	sunset   [sunset-pad, sunset+pad]    -> bz
//
// Sunrise and sunset arrive already widened by the solar display pad, and
// the daytime window uses them as-is, so it extends past true daylight by
// that pad on both sides. A window that matches no reading averages to NaN.
package window

import (
	"time"

	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/models"
)

// DefaultPad is the half-width of the sunrise and sunset windows.
const DefaultPad = 5 * time.Minute

// Bounds is a wall-clock window, inclusive on both ends.
type Bounds struct {
	Start models.ClockTime
	End   models.ClockTime
}

// Aggregator computes WindowAverages for a series.
type Aggregator struct {
	Pad time.Duration
}

// NewAggregator creates an Aggregator with the given pad.
func NewAggregator(pad time.Duration) *Aggregator {
	return &Aggregator{Pad: pad}
}

// Around returns the window of width 2*pad centred on t's wall clock.
func (a *Aggregator) Around(t time.Time) Bounds {
	return Bounds{
		Start: models.ClockOf(t.Add(-a.Pad)),
		End:   models.ClockOf(t.Add(a.Pad)),
	}
}

// Daytime returns the window from sunrise to sunset.
func (a *Aggregator) Daytime(sun models.SunTimes) Bounds {
	return Bounds{Start: models.ClockOf(sun.Sunrise), End: models.ClockOf(sun.Sunset)}
}

// Aggregate computes bw, bavg and bz for series.
func (a *Aggregator) Aggregate(series *models.Series, sun models.SunTimes) models.WindowAverages {
	return models.WindowAverages{
		Sunrise: a.mean(series, "sunrise", a.Around(sun.Sunrise)),
		Daytime: a.mean(series, "daytime", a.Daytime(sun)),
		Sunset:  a.mean(series, "sunset", a.Around(sun.Sunset)),
	}
}

func (a *Aggregator) mean(series *models.Series, name string, b Bounds) float64 {
	matched := series.Between(b.Start, b.End)
	if len(matched) == 0 {
		logger.Warn("No readings in %s window [%s, %s]", name, b.Start, b.End)
	} else {
		logger.Debug("Window %s [%s, %s] matched %d readings", name, b.Start, b.End, len(matched))
	}
	return models.MeanB(matched)
}
