// logger.go
// Package word2num provides shared utilities for the go_word2num package.
package word2num

import (
	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_word2num/internal/adapters/logger"
	"github.com/baditaflorin/go_word2num/internal/ports"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(logger.DefaultConfig())
}

// resolveLogger picks the port logger described by cfg, building the
// default one when none was configured.
func resolveLogger(cfg *Config) (ports.Logger, error) {
	if cfg.discardLogs {
		return logger.NewNopLogger(), nil
	}
	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = createDefaultLogger()
		if err != nil {
			return nil, err
		}
	}
	return logger.FromExisting(cfg.Logger), nil
}
