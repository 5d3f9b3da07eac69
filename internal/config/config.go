// SPDX-License-Identifier: MIT

// Package config loads mazegen settings from defaults, a YAML file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"
)

// MaxSide bounds maze width and height.
const MaxSide = 4096

// Config is the full mazegen configuration.
type Config struct {
	Maze    MazeConfig    `koanf:"maze"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// MazeConfig describes the maze to carve.
type MazeConfig struct {
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	Seed      int64  `koanf:"seed"` // 0 picks a time-based seed
	Algorithm string `koanf:"algorithm"`
	Solve     bool   `koanf:"solve"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	File      string `koanf:"file"` // empty disables the export
	Namespace string `koanf:"namespace"`
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Maze.Width < 1 || c.Maze.Width > MaxSide {
		errs = append(errs, fmt.Sprintf("maze.width must be between 1 and %d, got %d", MaxSide, c.Maze.Width))
	}
	if c.Maze.Height < 1 || c.Maze.Height > MaxSide {
		errs = append(errs, fmt.Sprintf("maze.height must be between 1 and %d, got %d", MaxSide, c.Maze.Height))
	}

	validAlgorithms := map[string]bool{"kruskal": true, "prim": true, "backtracker": true}
	if !validAlgorithms[c.Maze.Algorithm] {
		errs = append(errs, fmt.Sprintf("maze.algorithm must be one of: kruskal, prim, backtracker, got %s", c.Maze.Algorithm))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}

	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be one of: json, text, got %s", c.Log.Format))
	}

	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}
