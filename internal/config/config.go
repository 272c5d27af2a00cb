// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"go-simpler.org/env"
)

// Config holds settings for both OCR services. Keys irrelevant to a service
// are simply unused by it.
type Config struct {
	// HTTP listen address and/or port. Default: ':8080'
	SrvAddr string `env:"OCR_HOST_PORT" default:":8080"`
	// Force debug logging. Default: false
	Debug bool `env:"OCR_DEBUG" default:"false"`
	// Log level (DEBUG, INFO, WARN, ERROR)
	LogLevelStr string `env:"OCR_LOG_LEVEL" default:"INFO"`
	LogLevel    slog.Level
	// Maximum size of an uploaded file, human readable
	MaxUpload      string `env:"OCR_MAX_UPLOAD" default:"32MiB"`
	MaxUploadBytes uint64
	// Base URL of the resident DeepSeek runner process
	RunnerURL string `env:"OCR_RUNNER_URL" default:"http://127.0.0.1:5100"`
	// Fixed inference configuration passed to the runner
	RunnerBaseSize  int  `env:"OCR_RUNNER_BASE_SIZE" default:"1024"`
	RunnerImageSize int  `env:"OCR_RUNNER_IMAGE_SIZE" default:"640"`
	RunnerCropMode  bool `env:"OCR_RUNNER_CROP_MODE" default:"true"`
}

// FromEnv returns a config populated with defaults and values from
// environment variables.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(cfg.LogLevelStr)); err != nil {
		return nil, fmt.Errorf("parsing log level from env: %w", err)
	}
	if cfg.Debug {
		cfg.LogLevel = slog.LevelDebug
	}
	maxUpload, err := humanize.ParseBytes(cfg.MaxUpload)
	if err != nil {
		return nil, fmt.Errorf("parsing max upload size from env: %w", err)
	}
	cfg.MaxUploadBytes = maxUpload
	return &cfg, nil
}
