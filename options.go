package word2num

import (
	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_word2num/internal/warmup"
)

// Default configuration values.
const (
	DefaultFuzzyThreshold = 80
	DefaultMaxTokens      = 256
	// ExactThreshold disables fuzzy matching.
	ExactThreshold = 100
)

// WarmUpConfig controls the warm-up pass run by WithWarmUp and WarmUp.
type WarmUpConfig = warmup.WarmupConfig

// DefaultWarmUpConfig returns the default warm-up configuration.
func DefaultWarmUpConfig() WarmUpConfig { return warmup.DefaultWarmupConfig() }

// Config holds configuration options for a Word2Num converter.
type Config struct {
	// FuzzyThreshold is the minimum similarity (0-100) for a misspelled
	// word to be accepted. 100 disables the fuzzy fallback.
	FuzzyThreshold int
	// MaxTokens bounds the number of words in one phrase.
	MaxTokens int
	// MatchCacheSize enables an LRU cache of word matches when > 0.
	MatchCacheSize int
	// ZeroFallback treats an exact result of zero as no result and retries
	// with the fuzzy parser.
	ZeroFallback bool
	// WarmUp runs a warm-up pass when the converter is created.
	WarmUp       bool
	WarmUpConfig WarmUpConfig
	// Logger for tracing parse steps.
	Logger l.Logger

	discardLogs bool
}

// Option defines a functional option for configuring the converter.
type Option func(*Config)

// WithFuzzyThreshold sets the fuzzy matching threshold.
func WithFuzzyThreshold(threshold int) Option {
	return func(cfg *Config) {
		cfg.FuzzyThreshold = threshold
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
		cfg.discardLogs = false
	}
}

// WithDiscardLogger disables logging.
func WithDiscardLogger() Option {
	return func(cfg *Config) {
		cfg.discardLogs = true
	}
}

// WithMatchCache memoises up to size word matches.
func WithMatchCache(size int) Option {
	return func(cfg *Config) {
		cfg.MatchCacheSize = size
	}
}

// WithMaxTokens sets the maximum number of words accepted in one phrase.
func WithMaxTokens(n int) Option {
	return func(cfg *Config) {
		cfg.MaxTokens = n
	}
}

// WithZeroFallback makes an exact result of zero fall through to the
// fuzzy parser, as if the exact parse had failed.
func WithZeroFallback(enabled bool) Option {
	return func(cfg *Config) {
		cfg.ZeroFallback = enabled
	}
}

// WithWarmUp runs a warm-up pass over sample phrases at construction.
func WithWarmUp(enabled bool) Option {
	return func(cfg *Config) {
		cfg.WarmUp = enabled
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config WarmUpConfig) Option {
	return func(cfg *Config) {
		cfg.WarmUpConfig = config
	}
}
