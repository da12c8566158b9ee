package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func hasFieldError(err error, field string) bool {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return false
	}
	for _, fe := range fieldErrs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, cfg.TUI.Theme)
	assert.True(t, cfg.TUI.ToastsEnabled())
	assert.True(t, cfg.TUI.Animations.IsEnabled())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
tui:
  theme: gruvbox
  clock: 12h
  icons: ascii
  toasts: false
  max_title_length: 80
  animations:
    enabled: false
    fps: 30
    stagger: 50ms
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, Clock12h, cfg.TUI.Clock)
	assert.Equal(t, IconsASCII, cfg.TUI.Icons)
	assert.False(t, cfg.TUI.ToastsEnabled())
	assert.Equal(t, 80, cfg.TUI.MaxTitleLength)
	assert.False(t, cfg.TUI.Animations.IsEnabled())
	assert.Equal(t, 30, cfg.TUI.Animations.FPS)
	assert.Equal(t, 50*time.Millisecond, cfg.TUI.Animations.Stagger)
	// unset values fall back to defaults
	assert.Equal(t, 300*time.Millisecond, cfg.TUI.Animations.Exit)
	assert.Equal(t, 300*time.Millisecond, cfg.TUI.Animations.Form)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[tui]
theme = "catppuccin"
clock = "24h"

[tui.animations]
fps = 120
exit = "500ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "catppuccin", cfg.TUI.Theme)
	assert.Equal(t, Clock24h, cfg.TUI.Clock)
	assert.Equal(t, 120, cfg.TUI.Animations.FPS)
	assert.Equal(t, 500*time.Millisecond, cfg.TUI.Animations.Exit)
	assert.Equal(t, IconsUnicode, cfg.TUI.Icons)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", "tui: [not a map")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
tui:
  theme: does-not-exist
  clock: sundial
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.True(t, hasFieldError(err, "tui.theme"))
	assert.True(t, hasFieldError(err, "tui.clock"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty theme", func(c *Config) { c.TUI.Theme = "" }, "tui.theme"},
		{"unknown icons", func(c *Config) { c.TUI.Icons = "emoji" }, "tui.icons"},
		{"zero title length", func(c *Config) { c.TUI.MaxTitleLength = 0 }, "tui.max_title_length"},
		{"fps too high", func(c *Config) { c.TUI.Animations.FPS = 1000 }, "tui.animations.fps"},
		{"negative stagger", func(c *Config) { c.TUI.Animations.Stagger = -time.Second }, "tui.animations.stagger"},
		{"negative exit", func(c *Config) { c.TUI.Animations.Exit = -time.Second }, "tui.animations.exit"},
		{"negative form", func(c *Config) { c.TUI.Animations.Form = -time.Second }, "tui.animations.form"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, hasFieldError(err, tt.wantField), "expected field error for %s, got %v", tt.wantField, err)
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			off := false
			cfg := DefaultConfig()
			cfg.TUI.Theme = "gruvbox"
			cfg.TUI.Clock = Clock12h
			cfg.TUI.Toasts = &off

			require.NoError(t, Save(path, cfg))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "gruvbox", loaded.TUI.Theme)
			assert.Equal(t, Clock12h, loaded.TUI.Clock)
			assert.False(t, loaded.TUI.ToastsEnabled())
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatForPath("/etc/tasklist/config.toml"))
	assert.Equal(t, FormatTOML, FormatForPath("CONFIG.TOML"))
	assert.Equal(t, FormatYAML, FormatForPath("config.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("config"))
}

func TestAnimationConfig_FrameInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, AnimationConfig{FPS: 60}.FrameInterval())
	assert.Equal(t, time.Duration(0), AnimationConfig{}.FrameInterval())
	assert.False(t, AnimationConfig{}.IsEnabled())
}
