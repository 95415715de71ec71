package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/ledger-dashboard/internal/domain/port/core"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{" INFO ", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{"error", core.LogLevelError},
		{"", core.LogLevelInfo},
		{"verbose", core.LogLevelInfo},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseLevel(tc.input), tc.input)
	}
}

func TestZapLogger(t *testing.T) {
	t.Run("should drop messages below the level", func(t *testing.T) {
		observed, logs := observer.New(zapcore.DebugLevel)
		log := NewZapLoggerWithCore(observed, core.LogLevelWarn)

		log.Debug("debug", nil)
		log.Info("info", nil)
		log.Warn("warn", map[string]any{"dataset": "transactions"})
		log.Error("error", nil)

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, "warn", entries[0].Message)
		assert.Equal(t, "transactions", entries[0].ContextMap()["dataset"])
		assert.Equal(t, "error", entries[1].Message)
	})

	t.Run("should apply a changed level", func(t *testing.T) {
		observed, logs := observer.New(zapcore.DebugLevel)
		log := NewZapLoggerWithCore(observed, core.LogLevelInfo)

		log.Debug("hidden", nil)
		log.SetLevel(core.LogLevelDebug)
		log.Debug("shown", nil)

		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
		require.Len(t, logs.All(), 1)
		assert.Equal(t, "shown", logs.All()[0].Message)
	})

	t.Run("should let the noop logger swallow everything", func(t *testing.T) {
		log := NewNoopLogger()
		log.SetLevel(core.LogLevelError)
		log.Error("ignored", nil)
		assert.Equal(t, core.LogLevelError, log.GetLevel())
		assert.NoError(t, log.Flush())
	})
}
