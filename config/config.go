// Package config loads termgfx settings from YAML, layered over defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
	"github.com/odvcencio/termgfx/theme"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds rendering settings. Zero fields are filled from Default.
type Config struct {
	// Width and Height size the canvas. Zero means "use the terminal size".
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Output is "ansi" (text on stdout) or "tcell" (full-screen).
	Output string `yaml:"output"`
	// Color is "truecolor", "256" or "none".
	Color string `yaml:"color"`
	// Theme names a chroma style used for shape colors.
	Theme string `yaml:"theme"`
	// Fill is the glyph used by lines and filled rects.
	Fill string `yaml:"fill"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default holds the built-in settings.
var Default = Config{
	Output:   "ansi",
	Color:    "truecolor",
	Theme:    theme.DefaultName,
	Fill:     "█",
	LogLevel: "warn",
}

// Load reads path (when non-empty) and merges Default under it.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return Merge(cfg)
}

// Merge fills the zero fields of cfg from Default.
func Merge(cfg Config) (Config, error) {
	merged := cfg
	if err := mergo.Merge(&merged, Default); err != nil {
		return Config{}, fmt.Errorf("config: merge defaults: %w", err)
	}
	return merged, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height))
	}
	switch c.Output {
	case "ansi", "tcell":
	default:
		errs = append(errs, fmt.Errorf("%w: output %q", ErrInvalid, c.Output))
	}
	if _, err := paint.ParseMode(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, err := c.FillGlyph(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Mode returns the parsed color mode.
func (c Config) Mode() paint.Mode {
	m, _ := paint.ParseMode(c.Color)
	return m
}

// FillGlyph returns Fill as a single rune that fits one canvas cell.
func (c Config) FillGlyph() (rune, error) {
	runes := []rune(c.Fill)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%w: fill %q must be one glyph", ErrInvalid, c.Fill)
	}
	if err := canvas.CheckGlyph(runes[0]); err != nil || runes[0] == 0 {
		return 0, fmt.Errorf("%w: fill %q must be one column wide", ErrInvalid, c.Fill)
	}
	return runes[0], nil
}

// Level returns LogLevel as a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}
