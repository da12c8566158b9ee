// Package config handles configuration loading and validation for tasklist.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/tasklist/internal/core/styles"
)

// ClockFormat selects how completion times are rendered.
type ClockFormat string

const (
	ClockAuto ClockFormat = "auto" // derived from the locale
	Clock12h  ClockFormat = "12h"
	Clock24h  ClockFormat = "24h"
)

// IconSet selects the glyphs used for checkboxes and row controls.
type IconSet string

const (
	IconsUnicode IconSet = "unicode"
	IconsNerd    IconSet = "nerd"
	IconsASCII   IconSet = "ascii"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config holds the application configuration. Tasks themselves are never
// part of the config; only presentation settings live here.
type Config struct {
	TUI TUIConfig `yaml:"tui" toml:"tui"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme          string          `yaml:"theme" toml:"theme"`
	Clock          ClockFormat     `yaml:"clock" toml:"clock"`
	Icons          IconSet         `yaml:"icons" toml:"icons"`
	Toasts         *bool           `yaml:"toasts,omitempty" toml:"toasts,omitempty"` // nil = enabled
	MaxTitleLength int             `yaml:"max_title_length" toml:"max_title_length"`
	Animations     AnimationConfig `yaml:"animations" toml:"animations"`
}

// AnimationConfig controls transition timing.
type AnimationConfig struct {
	Enabled *bool         `yaml:"enabled,omitempty" toml:"enabled,omitempty"` // nil = enabled
	FPS     int           `yaml:"fps" toml:"fps"`
	Stagger time.Duration `yaml:"stagger" toml:"stagger"`
	Exit    time.Duration `yaml:"exit" toml:"exit"`
	Form    time.Duration `yaml:"form" toml:"form"`
}

// ToastsEnabled reports whether toast notifications are shown.
func (c TUIConfig) ToastsEnabled() bool {
	return c.Toasts == nil || *c.Toasts
}

// IsEnabled reports whether transitions are animated.
func (a AnimationConfig) IsEnabled() bool {
	return (a.Enabled == nil || *a.Enabled) && a.FPS > 0
}

// FrameInterval returns the duration of a single animation frame.
func (a AnimationConfig) FrameInterval() time.Duration {
	if a.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(a.FPS)
}

// DefaultTheme is the theme used when none is configured.
const DefaultTheme = styles.DefaultTheme

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:          DefaultTheme,
			Clock:          ClockAuto,
			Icons:          IconsUnicode,
			MaxTitleLength: 200,
			Animations: AnimationConfig{
				FPS:     60,
				Stagger: 100 * time.Millisecond,
				Exit:    300 * time.Millisecond,
				Form:    300 * time.Millisecond,
			},
		},
	}
}

// FormatForPath picks the file encoding from the path extension. Anything
// that is not .toml is treated as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := Decode(data, FormatForPath(configPath), &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Decode unmarshals data in the given format into cfg.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Save writes cfg to path, creating parent directories. The encoding is
// chosen from the path extension.
func Save(path string, cfg Config) error {
	data, err := Encode(cfg, FormatForPath(path))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Clock == "" {
		c.TUI.Clock = defaults.TUI.Clock
	}
	if c.TUI.Icons == "" {
		c.TUI.Icons = defaults.TUI.Icons
	}
	if c.TUI.MaxTitleLength == 0 {
		c.TUI.MaxTitleLength = defaults.TUI.MaxTitleLength
	}

	anim := &c.TUI.Animations
	if anim.FPS == 0 {
		anim.FPS = defaults.TUI.Animations.FPS
	}
	if anim.Stagger == 0 {
		anim.Stagger = defaults.TUI.Animations.Stagger
	}
	if anim.Exit == 0 {
		anim.Exit = defaults.TUI.Animations.Exit
	}
	if anim.Form == 0 {
		anim.Form = defaults.TUI.Animations.Form
	}
}
