// Package chart renders the RGB time series of a day together with the
// sunrise/sunset markers and blue-channel averages.
package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// TimeFormat is the x axis tick label layout.
const TimeFormat = "15:04:05"

var (
	colorR       = color.RGBA{R: 255, A: 255}
	colorG       = color.RGBA{G: 128, A: 255}
	colorB       = color.RGBA{B: 255, A: 255}
	colorSunrise = color.RGBA{R: 255, G: 165, A: 255}
	colorSunset  = color.RGBA{R: 128, B: 128, A: 255}
	colorBW      = color.RGBA{G: 255, B: 255, A: 255}
	colorBZ      = color.RGBA{R: 255, B: 255, A: 255}
)

// Renderer draws charts of a fixed size.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewRenderer creates a Renderer sized in inches.
func NewRenderer(widthIn, heightIn float64) *Renderer {
	return &Renderer{
		Width:  vg.Length(widthIn) * vg.Inch,
		Height: vg.Length(heightIn) * vg.Inch,
	}
}

// OutputPath swaps the extension of csvPath for ext. A non-empty dir
// replaces the directory of the result.
func OutputPath(csvPath, dir, ext string) string {
	ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	out := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ext
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}

// FormatValue renders an average for annotations, "NaN" when undefined.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.2f", v)
}

// Render draws the chart and saves it to path. The image format follows
// the extension of path.
func (r *Renderer) Render(path, source string, series *models.Series, sun models.SunTimes, avgs models.WindowAverages) error {
	p, err := Build(source, series, sun, avgs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}

	logger.Info("Chart saved to %s", path)
	return nil
}

// Open shows a saved chart in the system's default viewer. Viewer output
// goes to stderr so it never mixes with the console summary.
func Open(path string) error {
	browser.Stdout = os.Stderr
	if err := browser.OpenFile(path); err != nil {
		return fmt.Errorf("failed to open chart %s: %w", path, err)
	}
	return nil
}

// Build assembles the chart without writing it.
func Build(source string, series *models.Series, sun models.SunTimes, avgs models.WindowAverages) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("RGB values over time (%s)", source)
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "RGB channel value"
	p.X.Tick.Marker = plot.TimeTicks{Format: TimeFormat, Time: plot.UnixTimeIn(sun.Sunrise.Location())}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	rs := make(plotter.XYs, series.Len())
	gs := make(plotter.XYs, series.Len())
	bs := make(plotter.XYs, series.Len())
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i, reading := range series.Readings {
		x := unix(reading.Timestamp)
		rs[i] = plotter.XY{X: x, Y: float64(reading.R)}
		gs[i] = plotter.XY{X: x, Y: float64(reading.G)}
		bs[i] = plotter.XY{X: x, Y: float64(reading.B)}
		for _, v := range []int{reading.R, reading.G, reading.B} {
			yMin = math.Min(yMin, float64(v))
			yMax = math.Max(yMax, float64(v))
		}
	}
	if series.Len() == 0 {
		yMin, yMax = 0, models.MaxChannelValue
	}
	if yMin == yMax {
		yMin, yMax = yMin-1, yMax+1
	}

	for _, ch := range []struct {
		name string
		xys  plotter.XYs
		c    color.Color
	}{{"R", rs, colorR}, {"G", gs, colorG}, {"B", bs, colorB}} {
		l, err := plotter.NewLine(ch.xys)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", ch.name, err)
		}
		l.Color = ch.c
		p.Add(l)
		p.Legend.Add(ch.name, l)
	}

	sunrise, err := verticalLine(unix(sun.Sunrise), yMin, yMax, colorSunrise)
	if err != nil {
		return nil, err
	}
	sunset, err := verticalLine(unix(sun.Sunset), yMin, yMax, colorSunset)
	if err != nil {
		return nil, err
	}
	p.Add(sunrise, sunset)
	p.Legend.Add("Sunrise "+sun.Sunrise.Format("15:04"), sunrise)
	p.Legend.Add("Sunset "+sun.Sunset.Format("15:04"), sunset)

	daytimeLabel := "Mean B (daytime) " + FormatValue(avgs.Daytime)
	if math.IsNaN(avgs.Daytime) {
		p.Legend.Add(daytimeLabel)
	} else {
		first, last := unix(sun.Sunrise), unix(sun.Sunset)
		if series.Len() > 0 {
			first = math.Min(first, unix(series.Readings[0].Timestamp))
			last = math.Max(last, unix(series.Readings[series.Len()-1].Timestamp))
		}
		h, err := plotter.NewLine(plotter.XYs{{X: first, Y: avgs.Daytime}, {X: last, Y: avgs.Daytime}})
		if err != nil {
			return nil, fmt.Errorf("daytime mean: %w", err)
		}
		h.Color = colorB
		h.Width = vg.Points(0.7)
		p.Add(h)
		p.Legend.Add(daytimeLabel, h)
	}

	for _, pt := range []struct {
		name string
		at   time.Time
		v    float64
		c    color.Color
	}{
		{"Mean B (sunrise) ", sun.Sunrise, avgs.Sunrise, colorBW},
		{"Mean B (sunset) ", sun.Sunset, avgs.Sunset, colorBZ},
	} {
		if err := addPoint(p, pt.name+FormatValue(pt.v), unix(pt.at), pt.v, pt.c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// addPoint marks (x, v) with an annotated glyph. NaN values only get a legend entry.
func addPoint(p *plot.Plot, label string, x, v float64, c color.Color) error {
	if math.IsNaN(v) {
		p.Legend.Add(label)
		return nil
	}

	s, err := plotter.NewScatter(plotter.XYs{{X: x, Y: v}})
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(4)

	text, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: v}},
		Labels: []string{FormatValue(v)},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	text.Offset = vg.Point{X: -10, Y: 10}

	p.Add(s, text)
	p.Legend.Add(label, s)
	return nil
}

func verticalLine(x, yMin, yMax float64, c color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
	if err != nil {
		return nil, fmt.Errorf("vertical marker: %w", err)
	}
	l.Color = c
	l.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	return l, nil
}

func unix(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
