package initcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tasklist/internal/core/config"
)

func TestWizard_YesWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	var out bytes.Buffer

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Out: &out})
	require.NoError(t, w.Run(context.Background()))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme, cfg.TUI.Theme)
	assert.True(t, cfg.TUI.Animations.IsEnabled())
	assert.True(t, cfg.TUI.ToastsEnabled())
	assert.Contains(t, out.String(), "Created config")
}

func TestWizard_ExistingConfigNeedsForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  theme: gruvbox\n"), 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true})
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "gruvbox", "config untouched")
}

func TestWizard_ForceBacksUpExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	original := []byte("tui:\n  theme: gruvbox\n")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true})
	require.NoError(t, w.Run(context.Background()))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTheme, cfg.TUI.Theme)
}

func TestWizard_UsesPromptAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	w := NewWizard(WizardOptions{ConfigPath: path})
	w.prompt = func(a *Answers) error {
		a.Theme = "catppuccin"
		a.Clock = config.Clock12h
		a.Icons = config.IconsASCII
		a.Animations = false
		return nil
	}
	require.NoError(t, w.Run(context.Background()))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "catppuccin", cfg.TUI.Theme)
	assert.Equal(t, config.Clock12h, cfg.TUI.Clock)
	assert.Equal(t, config.IconsASCII, cfg.TUI.Icons)
	assert.False(t, cfg.TUI.Animations.IsEnabled())
}

func TestWizard_InvalidAnswersAreRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	w := NewWizard(WizardOptions{ConfigPath: path})
	w.prompt = func(a *Answers) error {
		a.Theme = "no-such-theme"
		return nil
	}
	require.Error(t, w.Run(context.Background()))
	assert.False(t, configFileExists(path))
}

func TestBackupExisting_MissingFile(t *testing.T) {
	backup, err := BackupExisting(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, backup)
}

func TestBackupExisting_KeepsContentAndMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui:\n  clock: 24h\n"), 0o600))
	require.NoError(t, os.WriteFile(path+".bak", []byte("stale"), 0o644))

	backup, err := BackupExisting(path)
	require.NoError(t, err)
	assert.Equal(t, path+".bak", backup)

	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "tui:\n  clock: 24h\n", string(data))

	info, err := os.Stat(backup)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBackupExisting_DirectoryIsAnError(t *testing.T) {
	_, err := BackupExisting(t.TempDir())
	require.Error(t, err)
}
