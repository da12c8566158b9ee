package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "tasklist", "config.yaml"), DefaultConfigPath())
}

func TestDefaultLogFile_StateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	assert.Equal(t, filepath.Join("/tmp/xdg-state", "tasklist", "tasklist.log"), DefaultLogFile())
}

func TestResolveLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")

	tests := []struct {
		name string
		flag string
		want string
	}{
		{"empty uses default", "", filepath.Join("/tmp/xdg-state", "tasklist", "tasklist.log")},
		{"dash means stderr", LogToStderr, ""},
		{"explicit path", "/var/log/tasks.log", "/var/log/tasks.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLogFile(tt.flag))
		})
	}
}
