package wt3000

import "time"

// Config holds the analyzer configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// LogLevel is the initial logging verbosity
	LogLevel LogLevel

	// ReadTimeout bounds each individual transport read inside a query
	ReadTimeout time.Duration

	// ResponseBufferSize is the default length bound for query responses
	// whose caller does not supply one
	ResponseBufferSize int
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		LogLevel:           LevelDebug,
		ReadTimeout:        5 * time.Second,
		ResponseBufferSize: 1024,
	}
}

// Option is a functional option for configuring the Analyzer.
type Option func(*Config)

// WithLogger sets a logger for analyzer operations.
//
// Example:
//
//	a := wt3000.New(wt3000.WithLogger(wtlog.NewConsole("wt3000")))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithLogLevel sets the initial logging verbosity. It can be changed later
// with SetLogLevel.
func WithLogLevel(level LogLevel) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithReadTimeout bounds each transport read inside a query. A query that
// needs several reads may block for up to this long per read.
//
// Example:
//
//	a := wt3000.New(wt3000.WithReadTimeout(2 * time.Second))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithResponseBufferSize sets the default response length bound used by
// queries without an explicit one (Identify, GetNumericValuesAsFloats).
func WithResponseBufferSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ResponseBufferSize = size
		}
	}
}
