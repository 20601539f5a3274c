// Package pipeline runs one analysis end to end:
//
//	load CSV -> sunrise/sunset -> window averages -> chart -> show -> console summary
//
// Each stage aborts the run on failure; the error names the failing stage.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rewired-gh/sunwindow/internal/chart"
	"github.com/rewired-gh/sunwindow/internal/config"
	"github.com/rewired-gh/sunwindow/internal/loader"
	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/models"
	"github.com/rewired-gh/sunwindow/internal/report"
	"github.com/rewired-gh/sunwindow/internal/solar"
	"github.com/rewired-gh/sunwindow/internal/window"
)

// Result is what a run computed.
type Result struct {
	RunID     string
	Series    *models.Series
	Date      time.Time
	Sun       models.SunTimes
	Averages  models.WindowAverages
	ChartPath string
	Shown     bool
}

// Pipeline holds the stages of a run.
type Pipeline struct {
	cfg        *config.Config
	solar      solar.Source
	aggregator *window.Aggregator
	renderer   *chart.Renderer
	opener     func(path string) error
	out        io.Writer
}

// New builds a pipeline from cfg, printing the summary to out.
func New(cfg *config.Config, out io.Writer) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		solar:      solar.NewCalculator(cfg.Solar.DisplayPad),
		aggregator: window.NewAggregator(cfg.Window.Pad),
		renderer:   chart.NewRenderer(cfg.Chart.WidthIn, cfg.Chart.HeightIn),
		opener:     chart.Open,
		out:        out,
	}
}

// WithSolar replaces the sunrise/sunset source.
func (p *Pipeline) WithSolar(s solar.Source) *Pipeline {
	p.solar = s
	return p
}

// WithOpener replaces the function that shows the saved chart.
func (p *Pipeline) WithOpener(open func(path string) error) *Pipeline {
	p.opener = open
	return p
}

// Run executes the pipeline once for the configured input.
func (p *Pipeline) Run() (*Result, error) {
	startTime := time.Now()
	res := &Result{RunID: uuid.New().String()}
	logger.SetRunID(res.RunID)
	defer logger.SetRunID("")

	loc := p.cfg.Location
	logger.Info("Starting analysis of %s for %s", p.cfg.Input.Path, loc)

	tz, err := loc.TZ()
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}

	series, err := loader.Load(p.cfg.Input.Path, tz)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	res.Series = series

	if p.cfg.Input.StrictSingleDay {
		if err := series.ValidateSingleDay(); err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
	}

	date, err := series.Date()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	res.Date = date
	logger.Info("Loaded %d readings for %s", series.Len(), date.Format(time.DateOnly))

	sun, err := p.solar.SunTimes(date, loc)
	if err != nil {
		return nil, fmt.Errorf("solar: %w", err)
	}
	res.Sun = sun

	res.Averages = p.aggregator.Aggregate(series, sun)
	logger.Debug("Averages: sunrise=%v daytime=%v sunset=%v", res.Averages.Sunrise, res.Averages.Daytime, res.Averages.Sunset)

	res.ChartPath = chart.OutputPath(p.cfg.Input.Path, p.cfg.Chart.OutputDir, p.cfg.Chart.Format)
	if err := p.renderer.Render(res.ChartPath, filepath.Base(p.cfg.Input.Path), series, sun, res.Averages); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	if p.cfg.Chart.Show {
		if err := p.opener(res.ChartPath); err != nil {
			logger.Warn("Failed to display chart: %v", err)
		} else {
			res.Shown = true
		}
	}

	if err := report.Write(p.out, sun, res.Averages); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	logger.Info("Analysis completed in %v", time.Since(startTime))
	return res, nil
}
