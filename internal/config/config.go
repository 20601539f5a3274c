package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rewired-gh/sunwindow/internal/models"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig     `mapstructure:"input"`
	Location models.Location `mapstructure:"location"`
	Solar    SolarConfig     `mapstructure:"solar"`
	Window   WindowConfig    `mapstructure:"window"`
	Chart    ChartConfig     `mapstructure:"chart"`
	Logging  LoggingConfig   `mapstructure:"logging"`
}

// InputConfig holds the sensor CSV source configuration
type InputConfig struct {
	Path            string `mapstructure:"path"`
	StrictSingleDay bool   `mapstructure:"strict_single_day"`
}

// SolarConfig holds sunrise/sunset computation configuration
type SolarConfig struct {
	// DisplayPad moves sunrise earlier and sunset later before they are used.
	DisplayPad time.Duration `mapstructure:"display_pad"`
}

// WindowConfig holds averaging window configuration
type WindowConfig struct {
	// Pad is the half-width of the windows centred on sunrise and sunset.
	Pad time.Duration `mapstructure:"pad"`
}

// ChartConfig holds chart rendering configuration
type ChartConfig struct {
	WidthIn   float64 `mapstructure:"width_in"`
	HeightIn  float64 `mapstructure:"height_in"`
	Format    string  `mapstructure:"format"`
	OutputDir string  `mapstructure:"output_dir"`
	// Show opens the saved chart in the system viewer.
	Show      bool    `mapstructure:"show"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
// An empty path, or a path that does not exist, yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("SUNWINDOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	// Input defaults
	v.SetDefault("input.path", "2024_06_10.csv")
	v.SetDefault("input.strict_single_day", true)

	// Location defaults (Tarnów)
	v.SetDefault("location.name", "Tarnów")
	v.SetDefault("location.region", "Poland")
	v.SetDefault("location.timezone", "Europe/Warsaw")
	v.SetDefault("location.latitude", 50.0123)
	v.SetDefault("location.longitude", 20.9856)

	// Solar and window defaults
	v.SetDefault("solar.display_pad", "5m")
	v.SetDefault("window.pad", "5m")

	// Chart defaults
	v.SetDefault("chart.width_in", 10.0)
	v.SetDefault("chart.height_in", 6.0)
	v.SetDefault("chart.format", "png")
	v.SetDefault("chart.output_dir", "")
	v.SetDefault("chart.show", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Input config
	if c.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}

	// Validate Location config
	if err := c.Location.Validate(); err != nil {
		return fmt.Errorf("location: %w", err)
	}

	// Validate pads
	if c.Solar.DisplayPad < 0 || c.Solar.DisplayPad > time.Hour {
		return fmt.Errorf("solar.display_pad must be between 0 and 1h")
	}
	if c.Window.Pad < 0 || c.Window.Pad > time.Hour {
		return fmt.Errorf("window.pad must be between 0 and 1h")
	}

	// Validate Chart config
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart.width_in and chart.height_in must be positive")
	}
	validChartFormats := map[string]bool{"png": true, "jpg": true, "jpeg": true, "svg": true, "pdf": true, "tif": true, "tiff": true}
	if !validChartFormats[strings.ToLower(c.Chart.Format)] {
		return fmt.Errorf("chart.format must be one of: png, jpg, jpeg, svg, pdf, tif, tiff")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}
