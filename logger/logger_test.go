package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	err = Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
}

func TestLoggerBeforeInitialize(t *testing.T) {
	// The package-level no-op logger must be safe to use without Initialize
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("noop", FieldCount, 1)
	})
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{5, zapcore.DebugLevel},
		{-1, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}
