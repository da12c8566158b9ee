package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/tasklist/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// TUI flags
	ProfilerPort int

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tasklist", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/tasklist/tasklist.log
// On Linux: $XDG_STATE_HOME/tasklist/tasklist.log (defaults to ~/.local/state/tasklist/tasklist.log)
func DefaultLogFile() string {
	// Check XDG_STATE_HOME first (works on both macOS and Linux)
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "tasklist", "tasklist.log")
	}

	home, _ := os.UserHomeDir()

	// On macOS, use ~/Library/Logs
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "tasklist", "tasklist.log")
	}

	// On Linux, use ~/.local/state
	return filepath.Join(home, ".local", "state", "tasklist", "tasklist.log")
}

// LogToStderr is the --log-file value that sends logs to stderr.
const LogToStderr = "-"

// ResolveLogFile maps the --log-file flag to the path handed to
// logutils.New. An empty flag selects DefaultLogFile; LogToStderr selects
// stderr, which logutils.New represents as "".
func ResolveLogFile(flag string) string {
	switch flag {
	case "":
		return DefaultLogFile()
	case LogToStderr:
		return ""
	}
	return flag
}
