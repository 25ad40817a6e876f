// Package matcher resolves input tokens to canonical vocabulary words,
// either exactly or by fuzzy similarity against a candidate set.
package matcher

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/baditaflorin/go_word2num/internal/core/domain"
	"github.com/baditaflorin/go_word2num/internal/ports"
)

// ExactThreshold disables fuzzy matching.
const ExactThreshold = 100

// Match is a resolved candidate and its similarity score.
type Match struct {
	Word  string
	Score int
}

// Morphology supplies the affix rules a language uses to derive regular
// denominator words from whole-number words.
type Morphology interface {
	// SingularDenominator strips the plural marker from a denominator word.
	SingularDenominator(word string) string
	// DenominatorStem strips the regular denominator suffix, returning the
	// candidate whole-number stem.
	DenominatorStem(word string) (string, bool)
	// RegularDenominator applies the regular denominator suffix to a
	// whole-number word.
	RegularDenominator(whole string) string
}

// Matcher resolves words against one vocabulary at a fixed threshold.
// It is safe for concurrent use.
type Matcher struct {
	vocab     *domain.Vocabulary
	morph     Morphology
	threshold int
	cache     ports.MatchCache
	keyPrefix string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithCache memoises whole-number and denominator resolutions. Keys carry
// the threshold, so matchers of one vocabulary may share a cache; matchers
// of different vocabularies must not.
func WithCache(cache ports.MatchCache) Option {
	return func(m *Matcher) {
		m.cache = cache
	}
}

// New creates a matcher. threshold must be in [0, 100].
func New(vocab *domain.Vocabulary, morph Morphology, threshold int, opts ...Option) (*Matcher, error) {
	if vocab == nil {
		return nil, errors.New("vocabulary must not be nil")
	}
	if morph == nil {
		return nil, errors.New("morphology must not be nil")
	}
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidThreshold, threshold)
	}

	m := &Matcher{
		vocab:     vocab,
		morph:     morph,
		threshold: threshold,
		keyPrefix: strconv.Itoa(threshold) + "|",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Threshold returns the configured fuzzy threshold.
func (m *Matcher) Threshold() int { return m.threshold }

// Vocabulary returns the vocabulary the matcher resolves against.
func (m *Matcher) Vocabulary() *domain.Vocabulary { return m.vocab }

// Exact reports whether the matcher only accepts identical words.
func (m *Matcher) Exact() bool { return m.threshold >= ExactThreshold }

// Match resolves word against candidates, returning the matched candidate.
func (m *Matcher) Match(word string, candidates []string) (string, bool) {
	match, ok := m.bestMatch(word, candidates)
	return match.Word, ok
}

// bestMatch returns the first highest-scoring candidate when it meets the
// threshold. An identical candidate wins immediately.
func (m *Matcher) bestMatch(word string, candidates []string) (Match, bool) {
	if m.Exact() {
		for _, c := range candidates {
			if c == word {
				return Match{Word: c, Score: 100}, true
			}
		}
		return Match{}, false
	}

	best := Match{}
	found := false
	for _, c := range candidates {
		score := Ratio(word, c)
		if score == 100 {
			return Match{Word: c, Score: 100}, true
		}
		if !found || score > best.Score {
			best = Match{Word: c, Score: score}
			found = true
		}
	}
	if !found || best.Score < m.threshold {
		return Match{}, false
	}
	return best, true
}

// MatchDigit resolves word to a digit word.
func (m *Matcher) MatchDigit(word string) (string, bool) {
	return m.Match(word, m.vocab.Digits.Words())
}

// MatchWholeNumber resolves word to a whole-number word.
func (m *Matcher) MatchWholeNumber(word string) (string, bool) {
	return m.Match(word, m.vocab.WholeNumbers.Words())
}

// MatchUnit resolves word to a unit word.
func (m *Matcher) MatchUnit(word string) (string, bool) {
	return m.Match(word, m.vocab.Units.Words())
}

// MatchNegativeSignifier resolves word to a negative signifier.
func (m *Matcher) MatchNegativeSignifier(word string) (string, bool) {
	return m.Match(word, m.vocab.NegativeSignifiers.Words())
}

// MatchDecimalSeparator resolves word to a decimal separator.
func (m *Matcher) MatchDecimalSeparator(word string) (string, bool) {
	return m.Match(word, m.vocab.DecimalSeparators.Words())
}

// MatchFractionSeparator resolves word to a fraction separator.
func (m *Matcher) MatchFractionSeparator(word string) (string, bool) {
	return m.Match(word, m.vocab.FractionSeparators.Words())
}

// MatchIndefiniteArticle resolves word to an indefinite article.
func (m *Matcher) MatchIndefiniteArticle(word string) (string, bool) {
	return m.Match(word, m.vocab.IndefiniteArticles.Words())
}

// ResolveWholeNumber resolves word to a whole-number word and its value.
func (m *Matcher) ResolveWholeNumber(word string) (domain.Entry, bool) {
	key := m.keyPrefix + "w|" + word
	if cached, ok := m.cached(key); ok {
		return domain.Entry{Word: cached.Word, Value: cached.Value}, cached.Found
	}

	matched, ok := m.MatchWholeNumber(word)
	var entry domain.Entry
	if ok {
		value, _ := m.vocab.WholeNumbers.Value(matched)
		entry = domain.Entry{Word: matched, Value: value}
	}
	m.store(key, ports.CachedMatch{Word: entry.Word, Value: entry.Value, Found: ok})
	return entry, ok
}

// ResolveDigit resolves word to a digit value.
func (m *Matcher) ResolveDigit(word string) (int64, bool) {
	matched, ok := m.MatchDigit(word)
	if !ok {
		return 0, false
	}
	return m.vocab.Digits.Value(matched)
}

func (m *Matcher) cached(key string) (ports.CachedMatch, bool) {
	if m.cache == nil {
		return ports.CachedMatch{}, false
	}
	return m.cache.Get(key)
}

func (m *Matcher) store(key string, match ports.CachedMatch) {
	if m.cache != nil {
		m.cache.Add(key, match)
	}
}
