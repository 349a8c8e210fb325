package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OffLevel sits above FatalLevel, so a core at this level writes nothing.
const OffLevel = zapcore.FatalLevel + 1

var (
	// global backs FromContext when a context carries no logger.
	//nolint:gochecknoglobals // Shared by every package that logs through a context.
	global *zap.SugaredLogger
	// globalLevel is the process-wide level; the CLIs move it with --log-level.
	//nolint:gochecknoglobals // Adjusted at runtime by the --log-level flag.
	globalLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() { //nolint:gochecknoinits // FromContext must work before any CLI setup.
	SetLogger(New(globalLevel))
}

// New builds a console logger on stderr; stdout is reserved for reports.
// A nil level means the process-wide level.
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = globalLevel
	}

	//nolint:exhaustruct // Unset encoder fields are intentionally omitted from output.
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "message",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		ConsoleSeparator: " | ",
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level), options...).Sugar()
}

// ParseLogLevel maps a --log-level or log_level value to a zap level.
// "off" and "none" silence every entry. Unknown input yields InfoLevel and false.
func ParseLogLevel(s string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	case "off", "none":
		return OffLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Logger returns the process-wide logger.
func Logger() *zap.SugaredLogger {
	return global
}

// SetLogger replaces the process-wide logger. Not safe for concurrent use.
func SetLogger(l *zap.SugaredLogger) {
	global = l
}

// SetLevel moves the process-wide level.
func SetLevel(level zapcore.Level) {
	globalLevel.SetLevel(level)

	_ = global.Sync() //nolint:errcheck // Sync on a terminal stderr commonly fails; nothing to do about it.
}
