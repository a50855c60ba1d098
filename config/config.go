// Package config loads the basin survey settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-basins/heightmap"
	"github.com/katalvlaran/lvlath-basins/survey"
)

var (
	// ErrInvalidTop indicates a basin count below 1.
	ErrInvalidTop = errors.New("config: top must be at least 1")
	// ErrInvalidWall indicates a wall height above the largest digit.
	ErrInvalidWall = errors.New("config: wall must be between 0 and 9")
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Config holds every tunable of a survey run. Empty input paths select
// the embedded datasets.
type Config struct {
	Top       int       `yaml:"top"`
	Wall      int       `yaml:"wall"`
	TestInput string    `yaml:"test_input"`
	FullInput string    `yaml:"full_input"`
	Log       LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and encoder.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Defaults returns the settings used when no file is given.
func Defaults() Config {
	return Config{
		Top:  survey.DefaultTop,
		Wall: int(heightmap.MaxHeight),
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Normalize trims string fields and lowercases the log level.
func (c *Config) Normalize() {
	c.TestInput = strings.TrimSpace(c.TestInput)
	c.FullInput = strings.TrimSpace(c.FullInput)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Top < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTop, c.Top)
	}
	if c.Wall < 0 || c.Wall > int(heightmap.MaxHeight) {
		return fmt.Errorf("%w: got %d", ErrInvalidWall, c.Wall)
	}
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}

	return nil
}

// ZapLevel parses Level into a zapcore.Level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}
	return lvl, nil
}
