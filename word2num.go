// word2num.go
// Package word2num converts number phrases such as "twenty-three point five"
// or "dos mil novecientos" into numeric values. Misspelled words are
// tolerated through fuzzy matching: each phrase is parsed exactly first and
// only falls back to fuzzy matching when the exact parse fails.
package word2num

import (
	"context"
	"errors"
	"fmt"

	"github.com/baditaflorin/go_word2num/internal/adapters/cache"
	"github.com/baditaflorin/go_word2num/internal/adapters/tokenizer"
	"github.com/baditaflorin/go_word2num/internal/core/matcher"
	"github.com/baditaflorin/go_word2num/internal/core/parser"
	"github.com/baditaflorin/go_word2num/internal/languages"
	"github.com/baditaflorin/go_word2num/internal/ports"
	"github.com/baditaflorin/go_word2num/internal/warmup"
)

// Word2Num converts phrases of one language. It is safe for concurrent use.
type Word2Num struct {
	config   Config
	language languages.Language
	logger   ports.Logger

	tokenizer ports.Tokenizer
	exact     ports.NumberParser
	// fuzzy is nil when the threshold is ExactThreshold.
	fuzzy ports.NumberParser
}

// New creates a converter for languageCode. An unsupported language or an
// invalid option is reported immediately.
func New(languageCode string, opts ...Option) (*Word2Num, error) {
	cfg := Config{
		FuzzyThreshold: DefaultFuzzyThreshold,
		MaxTokens:      DefaultMaxTokens,
		WarmUpConfig:   DefaultWarmUpConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate config parameters.
	if cfg.FuzzyThreshold < 0 || cfg.FuzzyThreshold > ExactThreshold {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, cfg.FuzzyThreshold)
	}
	if cfg.MatchCacheSize < 0 {
		return nil, errors.New("match cache size must not be negative")
	}
	parserConfig := parser.Config{MaxTokens: cfg.MaxTokens}
	if err := parserConfig.Validate(); err != nil {
		return nil, err
	}

	lang, err := languages.Lookup(languageCode)
	if err != nil {
		return nil, err
	}
	log, err := resolveLogger(&cfg)
	if err != nil {
		return nil, err
	}

	var matcherOpts []matcher.Option
	if cfg.MatchCacheSize > 0 {
		c, err := cache.NewLRUCache(cfg.MatchCacheSize)
		if err != nil {
			return nil, err
		}
		matcherOpts = append(matcherOpts, matcher.WithCache(c))
	}

	w := &Word2Num{
		config:    cfg,
		language:  lang,
		logger:    log,
		tokenizer: tokenizer.NewSimpleTokenizer(),
	}

	build := func(threshold int) (*parser.Parser, error) {
		m, err := matcher.New(lang.Vocabulary, lang.Grammar, threshold, matcherOpts...)
		if err != nil {
			return nil, err
		}
		return parser.NewParser(parserConfig, m, lang.Grammar, w.tokenizer, log)
	}

	exact, err := build(ExactThreshold)
	if err != nil {
		return nil, err
	}
	w.exact = exact
	if cfg.FuzzyThreshold < ExactThreshold {
		fuzzy, err := build(cfg.FuzzyThreshold)
		if err != nil {
			return nil, err
		}
		w.fuzzy = fuzzy
	}

	log.Debug("Created converter",
		"language", lang.Code,
		"fuzzy_threshold", cfg.FuzzyThreshold,
		"match_cache", cfg.MatchCacheSize,
	)

	if cfg.WarmUp {
		w.WarmUp(context.Background())
	}
	return w, nil
}

// Parse converts text to a number. The second result is false when text
// is not a number phrase of the converter's language.
func (w *Word2Num) Parse(text string) (float64, bool) {
	value, ok := w.exact.Parse(text)
	if ok && !(w.config.ZeroFallback && value == 0) {
		return value, true
	}
	if w.fuzzy == nil {
		return value, ok
	}

	w.logger.Debug("Falling back to fuzzy parser",
		"text", text,
		"fuzzy_threshold", w.config.FuzzyThreshold,
	)
	return w.fuzzy.Parse(text)
}

// Language returns the language code.
func (w *Word2Num) Language() string { return w.language.Code }

// FuzzyThreshold returns the fuzzy matching threshold.
func (w *Word2Num) FuzzyThreshold() int { return w.config.FuzzyThreshold }

func (w *Word2Num) String() string {
	return fmt.Sprintf("Word2Num(language=%s, fuzzyThreshold=%d)", w.language.Code, w.config.FuzzyThreshold)
}

// WarmUp parses the language's sample phrases, and misspelled variants of
// them, on several goroutines. It returns the number of phrases parsed.
func (w *Word2Num) WarmUp(ctx context.Context) int {
	m := warmup.NewManager(w.logger, w.config.WarmUpConfig)
	m.RegisterTokenizer(w.tokenizer)
	m.RegisterParser(w, w.language.Samples)
	return m.WarmUp(ctx)
}

// SupportedLanguages returns the supported language codes in sorted order.
func SupportedLanguages() []string {
	return languages.Codes()
}
