package logger

import (
	"os"

	"github.com/baditaflorin/go_word2num/internal/ports"
	"github.com/baditaflorin/l"
)

// DefaultConfig returns the logger configuration used when none is given.
func DefaultConfig() l.Config {
	return l.Config{
		Output:      os.Stdout,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	}
}

// StdLogger adapts the l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
}

// NewStdLogger creates a new standard logger adapter with default configuration.
func NewStdLogger() (*StdLogger, error) {
	return New(DefaultConfig())
}

// New creates a standard logger adapter with a custom configuration.
func New(config l.Config) (*StdLogger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// FromExisting wraps an existing l.Logger.
func FromExisting(logger l.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

// Close flushes and closes the underlying logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

var _ ports.Logger = (*StdLogger)(nil)

// NopLogger discards everything.
type NopLogger struct{}

// NewNopLogger returns a logger that discards all messages.
func NewNopLogger() ports.Logger { return NopLogger{} }

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
