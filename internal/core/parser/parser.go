// Package parser implements the shared number-phrase grammar. A phrase is
// split into sign, decimal, whole-number and fraction parts which are
// resolved recursively against a matcher.
package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/baditaflorin/go_word2num/internal/core/matcher"
	"github.com/baditaflorin/go_word2num/internal/ports"
)

// Config holds parser limits.
type Config struct {
	// MaxTokens bounds the number of tokens accepted in one phrase.
	MaxTokens int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 256,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.MaxTokens <= 0 {
		return errors.New("maxTokens must be greater than 0")
	}
	return nil
}

// Parser converts phrases of one language to numbers. It holds no
// per-call state and is safe for concurrent use.
type Parser struct {
	config    Config
	matcher   *matcher.Matcher
	grammar   Grammar
	tokenizer ports.Tokenizer
	logger    ports.Logger
}

// NewParser creates a new parser.
func NewParser(config Config, m *matcher.Matcher, grammar Grammar, tokenizer ports.Tokenizer, logger ports.Logger) (*Parser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("matcher must not be nil")
	}
	if grammar == nil {
		return nil, errors.New("grammar must not be nil")
	}
	if tokenizer == nil {
		return nil, errors.New("tokenizer must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}

	return &Parser{
		config:    config,
		matcher:   m,
		grammar:   grammar,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Threshold returns the fuzzy threshold of the underlying matcher.
func (p *Parser) Threshold() int { return p.matcher.Threshold() }

// Parse converts text to a number. The second result is false when the
// text is not a number phrase.
func (p *Parser) Parse(text string) (float64, bool) {
	return p.ParseTokens(p.tokenizer.Tokenize(text))
}

// ParseTokens converts an already tokenized phrase to a number.
func (p *Parser) ParseTokens(tokens []string) (float64, bool) {
	if len(tokens) == 0 {
		return 0, false
	}
	if len(tokens) > p.config.MaxTokens {
		p.logger.Warn("Phrase exceeds token limit",
			"tokens", len(tokens),
			"max_tokens", p.config.MaxTokens,
		)
		return 0, false
	}

	buf := newTokenBuffer(tokens, p.matcher, p.grammar)
	s, negative := p.stripNegative(buf, buf.all())
	if len(buf.content(s)) == 0 {
		return 0, false
	}

	var value float64
	var ok bool
	if sep, found := p.findDecimalSeparator(buf, s); found {
		value, ok = p.parseDecimal(buf, s, sep)
	} else {
		value, ok = p.parseNonDecimal(buf, s)
	}

	p.logger.Debug("Parsed phrase",
		"tokens", strings.Join(tokens, " "),
		"threshold", p.matcher.Threshold(),
		"value", value,
		"ok", ok,
	)
	if !ok {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

func (p *Parser) stripNegative(buf *tokenBuffer, s span) (span, bool) {
	leading := func() (span, bool) {
		if buf.isNegative(s.lo) {
			return span{lo: s.lo + 1, hi: s.hi}, true
		}
		return s, false
	}
	trailing := func() (span, bool) {
		if buf.isNegative(s.hi - 1) {
			return span{lo: s.lo, hi: s.hi - 1}, true
		}
		return s, false
	}

	switch p.grammar.NegativePosition() {
	case Trailing:
		return trailing()
	case TrailingThenLeading:
		if out, ok := trailing(); ok {
			return out, true
		}
		return leading()
	default:
		return leading()
	}
}

func (p *Parser) findDecimalSeparator(buf *tokenBuffer, s span) (int, bool) {
	for i := s.lo; i < s.hi; i++ {
		if buf.isDecimalSeparator(i) {
			return i, true
		}
	}
	return 0, false
}

// parseDecimal reads every token after the separator as one positional
// chunk: "point zero zero three six" is 36 / 10^4.
func (p *Parser) parseDecimal(buf *tokenBuffer, s span, sep int) (float64, bool) {
	integer := span{lo: s.lo, hi: sep}
	decimal := span{lo: sep + 1, hi: s.hi}

	intValue, ok := p.parseWhole(buf, buf.content(integer))
	if !ok {
		return 0, false
	}
	decValue, ok := p.parseWhole(buf, buf.content(decimal))
	if !ok {
		return 0, false
	}
	return intValue + decValue/math.Pow(10, float64(decimal.len())), true
}

func (p *Parser) parseNonDecimal(buf *tokenBuffer, s span) (float64, bool) {
	whole, fraction := p.splitWholeAndFraction(buf, s)

	wholeValue, ok := p.parseWhole(buf, buf.content(whole))
	if !ok {
		return 0, false
	}
	fractionValue, ok := p.parseFraction(buf, fraction)
	if !ok {
		return 0, false
	}
	return wholeValue + fractionValue, true
}

// splitWholeAndFraction splits at the last fraction separator when the
// phrase ends in a denominator. Without a separator the whole phrase is
// the fraction.
func (p *Parser) splitWholeAndFraction(buf *tokenBuffer, s span) (span, span) {
	if _, ok := buf.denominator(s.hi - 1); !ok {
		return s, span{lo: s.hi, hi: s.hi}
	}
	for i := s.hi - 1; i >= s.lo; i-- {
		if buf.isFractionSeparator(i) {
			return span{lo: s.lo, hi: i}, span{lo: i + 1, hi: s.hi}
		}
	}
	return span{lo: s.lo, hi: s.lo}, s
}

func (p *Parser) parseFraction(buf *tokenBuffer, s span) (float64, bool) {
	if s.empty() {
		return 0, true
	}
	denominator, ok := buf.denominator(s.hi - 1)
	if !ok || denominator == 0 {
		return 0, false
	}

	numerator := span{lo: s.lo, hi: s.hi - 1}
	var numeratorValue float64
	switch {
	case numerator.empty():
		numeratorValue = 1
	case numerator.len() == 1 && buf.isArticle(numerator.lo):
		numeratorValue = 1
	default:
		numeratorValue, ok = p.parseWhole(buf, buf.content(numerator))
		if !ok {
			return 0, false
		}
	}
	return numeratorValue / float64(denominator), true
}

// parseWhole parses non-filler token indices as an integer.
func (p *Parser) parseWhole(buf *tokenBuffer, idx []int) (float64, bool) {
	if len(idx) == 0 {
		return 0, true
	}
	if value, ok := p.parseDigitSequence(buf, idx); ok {
		return value, true
	}

	if k, unit, ok := p.findUnit(buf, idx); ok {
		left, right := idx[:k], idx[k+1:]

		multiplier := 1.0
		if len(left) > 0 && !(len(left) == 1 && buf.isArticle(left[0])) {
			multiplier, ok = p.parseWhole(buf, left)
			if !ok {
				return 0, false
			}
		}
		remainder, ok := p.parseWhole(buf, right)
		if !ok {
			return 0, false
		}
		return multiplier*float64(unit) + remainder, true
	}

	var sum float64
	for _, i := range idx {
		entry, ok := buf.wholeNumber(i)
		if !ok {
			return 0, false
		}
		sum += float64(entry.Value)
	}
	return sum, true
}

// parseDigitSequence reads "five five nine two" as 5592. It fails unless
// every token is a digit word.
func (p *Parser) parseDigitSequence(buf *tokenBuffer, idx []int) (float64, bool) {
	var sb strings.Builder
	sb.Grow(len(idx))
	for _, i := range idx {
		d, ok := buf.digit(i)
		if !ok {
			return 0, false
		}
		sb.WriteByte(byte('0' + d))
	}
	value, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// findUnit returns the position in idx of the token resolving to the
// largest unit, the first one on ties.
func (p *Parser) findUnit(buf *tokenBuffer, idx []int) (int, int64, bool) {
	units := p.matcher.Vocabulary().Units
	bestPos := -1
	var bestValue int64
	for pos, i := range idx {
		entry, ok := buf.wholeNumber(i)
		if !ok || !units.Contains(entry.Word) {
			continue
		}
		if bestPos < 0 || entry.Value > bestValue {
			bestPos, bestValue = pos, entry.Value
		}
	}
	return bestPos, bestValue, bestPos >= 0
}
