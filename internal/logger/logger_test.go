package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		level      string
		enabled    zapcore.Level
		disabled   zapcore.Level
	}{
		{name: "development default", level: "", enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "development debug", level: "debug", enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "production warn", production: true, level: "warn", enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.production, tt.level)
			require.NoError(t, err)

			assert.NotNil(t, l.Check(tt.enabled, "msg"))
			assert.Nil(t, l.Check(tt.disabled, "msg"))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(false, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}
