// Package wtlog adapts zerolog to the wt3000.Logger interface.
package wtlog

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger forwards wt3000 driver logging to a zerolog.Logger.
type Logger struct {
	zl zerolog.Logger
}

// New wraps an existing zerolog.Logger.
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// NewConsole returns a Logger writing human-readable output to stdout,
// tagged with the given application name.
func NewConsole(app string) *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	zl := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	return &Logger{zl: zl}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.zl.Debug(), keysAndValues).Msg(msg)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.zl.Info(), keysAndValues).Msg(msg)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.zl.Error(), keysAndValues).Msg(msg)
}

func withFields(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		e = e.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	// An odd trailing value has no key; keep it visible rather than drop it.
	if len(keysAndValues)%2 != 0 {
		e = e.Interface("extra", keysAndValues[len(keysAndValues)-1])
	}
	return e
}
