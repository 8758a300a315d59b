package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rickchristie/apphook/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log:
  level: debug
  format: json
gui: true
metrics:
  enabled: true
hooks:
  - name: log
    kind: logger
  - name: guard
    kind: unsaved
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, logging.DefaultConfig(), cfg.Log)
	assert.False(t, cfg.GUI)
	assert.Empty(t, cfg.Hooks)
}

func TestLoad_Full(t *testing.T) {
	cfg, err := Load([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, logging.Config{Level: "debug", Format: "json"}, cfg.Log)
	assert.True(t, cfg.GUI)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []HookConfig{
		{Name: "log", Kind: "logger"},
		{Name: "guard", Kind: "unsaved"},
	}, cfg.Hooks)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte("log:\n  level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, logging.FormatConsole, cfg.Log.Format)
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown top-level key", "plugins: []\n"},
		{"unknown hook kind", "hooks:\n  - name: a\n    kind: telepathy\n"},
		{"missing hook name", "hooks:\n  - kind: nop\n"},
		{"empty hook name", "hooks:\n  - name: ''\n    kind: nop\n"},
		{"gui not boolean", "gui: maybe\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.content))

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
		})
	}
}

func TestLoad_DuplicateHookNames(t *testing.T) {
	_, err := Load([]byte("hooks:\n  - name: a\n    kind: nop\n  - name: a\n    kind: logger\n"))

	assert.ErrorContains(t, err, `duplicate hook name "a"`)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("log: [unclosed"))

	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APPHOOK_LOG_LEVEL", "error")
	t.Setenv("APPHOOK_GUI", "true")
	t.Setenv("APPHOOK_METRICS_ENABLED", "true")

	cfg, err := Load([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.GUI)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrideValidated(t *testing.T) {
	t.Setenv("APPHOOK_LOG_FORMAT", "xml")

	_, err := Load(nil)

	assert.ErrorContains(t, err, "invalid log format")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apphook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Hooks, 2)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFile_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.yaml")
	big := make([]byte, maxConfigFileSize+10)
	for i := range big {
		big[i] = '#'
	}
	require.NoError(t, os.WriteFile(path, big, 0600))

	_, err := LoadFile(path)

	assert.ErrorContains(t, err, "exceeds")
}
