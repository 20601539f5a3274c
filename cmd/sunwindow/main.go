package main

import (
	"flag"
	"log"
	"os"

	"github.com/rewired-gh/sunwindow/internal/config"
	"github.com/rewired-gh/sunwindow/internal/logger"
	"github.com/rewired-gh/sunwindow/internal/pipeline"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup logging with level support
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug("Configuration loaded from %s", *configPath)

	if _, err := pipeline.New(cfg, os.Stdout).Run(); err != nil {
		logger.Fatal("Analysis failed: %v", err)
	}
}
