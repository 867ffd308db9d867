package logger

import (
	"errors"
	"testing"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedLogger builds a ZapLogger over an observer core so tests can
// inspect what was recorded.
func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core, logs := observer.New(level)
	return &ZapLogger{logger: zap.New(core), level: level}, logs
}

func TestSetLevelGatesMessages(t *testing.T) {
	log, logs := newObservedLogger()

	log.Debug("hidden")
	assert.Zero(t, logs.Len())

	log.SetLevel(contracts.DebugLevel)
	log.Debug("visible")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "visible", logs.All()[0].Message)
}

func TestLevelsRecordAtMatchingSeverity(t *testing.T) {
	log, logs := newObservedLogger()

	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestFieldsAreConverted(t *testing.T) {
	log, logs := newObservedLogger()

	sendErr := errors.New("driver failure")
	log.Info("device opened",
		log.Field().Int("deviceID", 1),
		log.Field().String("name", "USB MIDI Interface"),
		log.Field().Bool("default", false),
		log.Field().Error("error", sendErr),
	)

	require.Equal(t, 1, logs.Len())
	context := logs.All()[0].ContextMap()
	assert.Equal(t, int64(1), context["deviceID"])
	assert.Equal(t, "USB MIDI Interface", context["name"])
	assert.Equal(t, false, context["default"])
	assert.Equal(t, sendErr.Error(), context["error"])
}

func TestZapLevelMapping(t *testing.T) {
	tests := []struct {
		level    contracts.LogLevel
		expected zapcore.Level
	}{
		{contracts.DebugLevel, zapcore.DebugLevel},
		{contracts.InfoLevel, zapcore.InfoLevel},
		{contracts.WarnLevel, zapcore.WarnLevel},
		{contracts.ErrorLevel, zapcore.ErrorLevel},
		{contracts.FatalLevel, zapcore.FatalLevel},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, zapLevel(tc.level))
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	log := NewNopLogger()

	// Nothing to assert beyond absence of panics and output.
	log.SetLevel(contracts.DebugLevel)
	log.Debug("dropped", log.Field().Int("deviceID", 0))
	log.Info("dropped")
	log.Warn("dropped")
	log.Error("dropped")
}
