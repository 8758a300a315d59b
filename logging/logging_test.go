package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"default", DefaultConfig(), ""},
		{"json debug", Config{Level: "debug", Format: FormatJSON}, ""},
		{"bad level", Config{Level: "loud", Format: FormatJSON}, "invalid log level"},
		{"bad format", Config{Level: "info", Format: "xml"}, "invalid log format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: FormatJSON}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("registered hook", zap.String("hook", "stats"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registered hook", entry["msg"])
	assert.Equal(t, "stats", entry["hook"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithWriter_InvalidConfig(t *testing.T) {
	_, err := NewWithWriter(Config{Level: "info", Format: "xml"}, zapcore.AddSync(&bytes.Buffer{}))

	assert.ErrorContains(t, err, "invalid config")
}
