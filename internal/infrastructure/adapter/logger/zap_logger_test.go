package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playkaro/teenpatti-server/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  core.LogLevel
	}{
		{"debug", "debug", core.LogLevelDebug},
		{"info", "info", core.LogLevelInfo},
		{"warn", "warn", core.LogLevelWarn},
		{"warning alias", "warning", core.LogLevelWarn},
		{"error", "error", core.LogLevelError},
		{"unknown falls back to info", "verbose", core.LogLevelInfo},
		{"empty falls back to info", "", core.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNewZapLogger_AppliesConfiguredLevel(t *testing.T) {
	l := NewZapLogger(false, "error")
	assert.Equal(t, core.LogLevelError, l.GetLevel())

	l = NewZapLogger(true, "debug")
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())

	// SetLevel still overrides after construction
	l.SetLevel(core.LogLevelWarn)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())
}
