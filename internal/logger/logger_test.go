package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" INFO ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"off":     OffLevel,
		"none":    OffLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("unknown")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

// TestFromContext_FallsBackToGlobal ensures a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestContextHelpers verifies names and fields attached to a context reach the log entry.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "simulator")
	ctx = WithKV(ctx, "scenario", "flood")

	InfoKV(ctx, "Activation pass", "round", 1)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "simulator", entries[0].LoggerName)
	require.Equal(t, "Activation pass", entries[0].Message)

	fields := entries[0].ContextMap()
	require.Equal(t, "flood", fields["scenario"])
	require.EqualValues(t, 1, fields["round"])
}

// TestWithLevel checks that the option overrides the level of the wrapped core.
func TestWithLevel(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core, WithLevel(zapcore.WarnLevel)).Sugar()

	l.Info("dropped")
	l.Warn("kept")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "kept", logs.All()[0].Message)
}

// TestOffLevel_SilencesEverything ensures "off" disables even fatal entries.
func TestOffLevel_SilencesEverything(t *testing.T) {
	t.Parallel()

	level, ok := ParseLogLevel("off")
	require.True(t, ok)

	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core, WithLevel(level))

	require.False(t, l.Core().Enabled(zapcore.FatalLevel))
	require.False(t, l.Core().Enabled(zapcore.DPanicLevel))

	l.Error("dropped")
	require.Zero(t, logs.Len())
}

// TestLevelHelpers verifies each helper logs at its own level through the context logger.
func TestLevelHelpers(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	DebugKV(ctx, "debug")
	InfoKV(ctx, "info")
	Infof(ctx, "%d passed", 9)
	WarnKV(ctx, "warn")
	ErrorKV(ctx, "error", "error", "boom")

	entries := logs.All()
	require.Len(t, entries, 5)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "9 passed", entries[2].Message)
	require.Equal(t, zapcore.WarnLevel, entries[3].Level)
	require.Equal(t, zapcore.ErrorLevel, entries[4].Level)
	require.Equal(t, "boom", entries[4].ContextMap()["error"])
}
