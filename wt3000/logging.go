package wt3000

// LogLevel controls how much of the command traffic the analyzer reports to
// its logger. Levels are ordered; a level enables itself and everything more
// severe.
type LogLevel int

const (
	// LevelDebug logs every command line and response
	LevelDebug LogLevel = iota

	// LevelInfo logs lifecycle events such as connect
	LevelInfo

	// LevelError logs failures only
	LevelError

	// LevelSilent disables logging regardless of the configured logger
	LevelSilent
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// Logger is an optional logging interface the analyzer reports through.
// This allows integration with any logging framework; the wtlog package
// provides a zerolog-backed implementation.
//
// Example with the standard log package:
//
//	type StdLogger struct{}
//	func (StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	a := wt3000.New(wt3000.WithLogger(StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
