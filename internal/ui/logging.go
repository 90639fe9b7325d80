package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	Debug bool
	zl    zerolog.Logger
}

func NewLogger(debug bool) *Logger {
	return NewLoggerTo(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, debug)
}

// NewLoggerTo logs to w; tests pass a plain buffer.
func NewLoggerTo(w io.Writer, debug bool) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &Logger{
		Debug: debug,
		zl:    zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msg(line(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.zl.Info().Msg(line(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.zl.Warn().Msg(line(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.zl.Error().Msg(line(format, args...))
}

// With returns a child logger carrying a repo field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{Debug: l.Debug, zl: l.zl.With().Str(key, value).Logger()}
}

func line(format string, args ...any) string {
	return strings.TrimRight(fmt.Sprintf(format, args...), "\n")
}
