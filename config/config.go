// Package config loads run settings for the hashlife command line tools.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config contains everything a run needs.
type Config struct {
	// Pattern is a file path, or "builtin:<name>".
	Pattern string `yaml:"pattern"`

	// Format is auto, rle or plaintext.
	Format string `yaml:"format"`

	// Generations is the total number of generations to simulate.
	Generations int64 `yaml:"generations"`

	// Step is the stride between reported frames or checks. Zero means one
	// jump straight to Generations.
	Step int64 `yaml:"step"`

	// Viewport is the window to render.
	Viewport ViewportConfig `yaml:"viewport"`

	// CollectThreshold triggers store collection above this many nodes; 0 disables it.
	CollectThreshold int `yaml:"collect_threshold"`

	// Color is auto, always or never.
	Color string `yaml:"color"`

	// Log contains logging settings.
	Log LogConfig `yaml:"log"`
}

// ViewportConfig is the rendered window. Zero Rows or Cols fits the live
// bounding box, capped at MaxRows x MaxCols.
type ViewportConfig struct {
	Top     int64 `yaml:"top"`
	Left    int64 `yaml:"left"`
	Rows    int64 `yaml:"rows"`
	Cols    int64 `yaml:"cols"`
	MaxRows int64 `yaml:"max_rows"`
	MaxCols int64 `yaml:"max_cols"`
}

// Auto reports whether the window should follow the live cells.
func (v ViewportConfig) Auto() bool {
	return v.Rows == 0 || v.Cols == 0
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Pattern:          "builtin:glider",
		Format:           "auto",
		Generations:      0,
		Step:             0,
		Viewport:         ViewportConfig{MaxRows: 40, MaxCols: 80},
		CollectThreshold: 1 << 22,
		Color:            "auto",
		Log:              LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must be >= 0, got %d", ErrInvalidConfig, c.Generations)
	}
	if c.Step < 0 {
		return fmt.Errorf("%w: step must be >= 0, got %d", ErrInvalidConfig, c.Step)
	}
	if c.CollectThreshold < 0 {
		return fmt.Errorf("%w: collect_threshold must be >= 0, got %d", ErrInvalidConfig, c.CollectThreshold)
	}
	if c.Viewport.Rows < 0 || c.Viewport.Cols < 0 || c.Viewport.MaxRows < 0 || c.Viewport.MaxCols < 0 {
		return fmt.Errorf("%w: viewport sizes must be >= 0", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Format) {
	case "", "auto", "rle", "plaintext", "cells":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, name)
}

// NewLogger builds a slog.Logger writing to w as configured.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
