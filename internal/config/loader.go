// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix   = "MAZEGEN_"
	defaultFile = "mazegen.yaml"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrFileNotFound indicates an explicitly requested config file is missing.
	ErrFileNotFound = errors.New("config: file not found")
)

// Loader loads configuration from several sources.
type Loader struct {
	k         *koanf.Koanf
	file      string
	explicit  bool
	envPrefix string
	overrides map[string]any
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConfigFile sets the YAML file to read. Unlike the default
// mazegen.yaml, an explicit file must exist.
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		if path != "" {
			l.file = path
			l.explicit = true
		}
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides sets dotted keys that win over every other source,
// typically the flags a user set explicitly.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader returns a Loader with the default file and prefix.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		file:      defaultFile,
		envPrefix: envPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges, in increasing priority:
//  1. Defaults
//  2. Config file (yaml)
//  3. Environment variables
//  4. Overrides
//
// and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Defaults returns the lowest-priority values as dotted keys.
func Defaults() map[string]any {
	return map[string]any{
		"maze.width":     16,
		"maze.height":    12,
		"maze.seed":      0,
		"maze.algorithm": "kruskal",
		"maze.solve":     false,

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.file_path":   "logs/mazegen.log",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"metrics.file":      "",
		"metrics.namespace": "mazegen",
	}
}

func (l *Loader) loadFile() error {
	if _, err := os.Stat(l.file); err != nil {
		if l.explicit {
			return fmt.Errorf("%w: %s", ErrFileNotFound, l.file)
		}
		return nil
	}
	if err := l.k.Load(file.Provider(l.file), yaml.Parser()); err != nil {
		return fmt.Errorf("config: load %s: %w", l.file, err)
	}
	return nil
}

// loadEnv maps PREFIX_SECTION_FIELD to section.field; only the first
// underscore separates, so MAZEGEN_LOG_MAX_SIZE becomes log.max_size.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey string, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		return strings.Replace(key, "_", ".", 1), value
	}), nil)
}
