// Package logging implements the activity log shown to the console user.
//
// Lines have the form "[<timestamp>] Log: <message>". The logger is built on
// a zap console encoder so it shares sinks, clocks and sync semantics with
// the diagnostic logger.
package logging

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultTimeLayout is used when Config.TimeLayout is empty.
const DefaultTimeLayout = "2006-01-02 15:04:05"

const loggerName = "Log"

// Config holds optional Logger settings.
type Config struct {
	// TimeLayout is the time.Format layout for the bracketed timestamp.
	TimeLayout string
	// Clock overrides the time source, mainly for tests.
	Clock zapcore.Clock
}

// Logger writes timestamped activity lines.
type Logger struct {
	lg *zap.Logger
}

// New creates a Logger writing to w, or os.Stdout when w is nil.
func New(w io.Writer, cfg Config) *Logger {
	if w == nil {
		w = os.Stdout
	}
	layout := cfg.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}

	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + t.Format(layout) + "]")
		},
		EncodeName: func(name string, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(name + ":")
		},
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)

	var opts []zap.Option
	if cfg.Clock != nil {
		opts = append(opts, zap.WithClock(cfg.Clock))
	}
	return &Logger{lg: zap.New(core, opts...).Named(loggerName)}
}

// Log writes message as a single activity line.
func (l *Logger) Log(message string) {
	l.lg.Info(message)
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.lg.Sync()
}
