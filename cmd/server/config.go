package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	word2num "github.com/baditaflorin/go_word2num"
)

// Config holds the server settings. Values come from an optional YAML
// file, then WORD2NUM_* environment variables, then the defaults below.
type Config struct {
	Address        string        `yaml:"address" env:"WORD2NUM_ADDRESS" env-default:":8080"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"WORD2NUM_READ_TIMEOUT" env-default:"30s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"WORD2NUM_WRITE_TIMEOUT" env-default:"30s"`
	MaxRequestSize int           `yaml:"max_request_size" env:"WORD2NUM_MAX_REQUEST_SIZE" env-default:"10485760"`
	// Concurrency of 0 lets fasthttp pick its default.
	Concurrency int `yaml:"concurrency" env:"WORD2NUM_CONCURRENCY" env-default:"0"`

	Language       string `yaml:"language" env:"WORD2NUM_LANGUAGE" env-default:"en"`
	FuzzyThreshold int    `yaml:"fuzzy_threshold" env:"WORD2NUM_FUZZY_THRESHOLD" env-default:"80"`
	MatchCacheSize int    `yaml:"match_cache_size" env:"WORD2NUM_MATCH_CACHE_SIZE" env-default:"4096"`
	MaxBatchSize   int    `yaml:"max_batch_size" env:"WORD2NUM_MAX_BATCH_SIZE" env-default:"10000"`
	Workers        int    `yaml:"workers" env:"WORD2NUM_WORKERS" env-default:"0"`
	WarmUp         bool   `yaml:"warm_up" env:"WORD2NUM_WARM_UP" env-default:"true"`

	// LogFile of "" logs to stdout.
	LogFile string `yaml:"log_file" env:"WORD2NUM_LOG_FILE"`
}

// LoadConfig reads the configuration. An empty path reads the
// environment only.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Address == "" {
		return errors.New("address must not be empty")
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > word2num.ExactThreshold {
		return fmt.Errorf("%w: got %d", word2num.ErrInvalidThreshold, c.FuzzyThreshold)
	}
	if c.MaxBatchSize <= 0 {
		return errors.New("max batch size must be greater than 0")
	}
	if c.MatchCacheSize < 0 {
		return errors.New("match cache size must not be negative")
	}
	if c.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}
