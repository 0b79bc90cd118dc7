package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologProvider implements LoggerProvider on top of rs/zerolog.
type ZerologProvider struct {
	root zerolog.Logger
}

// NewZerologProvider creates a provider writing JSON lines to stderr at the
// given level.
func NewZerologProvider(level zerolog.Level) *ZerologProvider {
	return NewZerologProviderWithWriter(os.Stderr, level)
}

// NewZerologProviderWithWriter creates a provider writing to w. Used by
// tests to capture output.
func NewZerologProviderWithWriter(w io.Writer, level zerolog.Level) *ZerologProvider {
	root := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &ZerologProvider{root: root}
}

// GetLogger returns the provider's root logger.
func (p *ZerologProvider) GetLogger() Logger {
	return &zerologLogger{l: p.root}
}

// GetLoggerWithName returns a logger tagged with a component name.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	return &zerologLogger{l: p.root.With().Str(ComponentKey, name).Logger()}
}

// ToLogLevel converts a level string to a zerolog level.
func ToLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
}

type zerologLogger struct {
	l zerolog.Logger
}

func (z *zerologLogger) Debug(msg string, fields ...any) {
	applyFields(z.l.Debug(), fields).Msg(msg)
}

func (z *zerologLogger) Info(msg string, fields ...any) {
	applyFields(z.l.Info(), fields).Msg(msg)
}

func (z *zerologLogger) Warn(msg string, fields ...any) {
	applyFields(z.l.Warn(), fields).Msg(msg)
}

func (z *zerologLogger) Error(msg string, fields ...any) {
	applyFields(z.l.Error(), fields).Msg(msg)
}

func (z *zerologLogger) With(fields ...any) Logger {
	ctx := z.l.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{l: ctx.Logger()}
}

// applyFields attaches alternating key-value pairs to a zerolog event.
// A trailing key without a value is ignored; non-string keys are stringified.
func applyFields(ev *zerolog.Event, fields []any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", fields[i])
		}
		switch v := fields[i+1].(type) {
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}
