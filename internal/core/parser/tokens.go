package parser

import (
	"github.com/baditaflorin/go_word2num/internal/core/domain"
	"github.com/baditaflorin/go_word2num/internal/core/matcher"
)

// span is a half-open index range [lo, hi) over a tokenBuffer.
type span struct {
	lo, hi int
}

func (s span) len() int    { return s.hi - s.lo }
func (s span) empty() bool { return s.hi <= s.lo }

type wholeResolution struct {
	entry domain.Entry
	ok    bool
	done  bool
}

type denominatorResolution struct {
	value int64
	ok    bool
	done  bool
}

// tokenBuffer holds the tokens of one parse call together with the
// per-token matches already computed during that call. Sub-sequences are
// spans or index slices over it; the tokens are never copied.
type tokenBuffer struct {
	tokens       []string
	matcher      *matcher.Matcher
	filler       []bool
	whole        []wholeResolution
	denominators []denominatorResolution
}

func newTokenBuffer(tokens []string, m *matcher.Matcher, g Grammar) *tokenBuffer {
	b := &tokenBuffer{
		tokens:       tokens,
		matcher:      m,
		filler:       make([]bool, len(tokens)),
		whole:        make([]wholeResolution, len(tokens)),
		denominators: make([]denominatorResolution, len(tokens)),
	}
	for i, t := range tokens {
		b.filler[i] = g.IsFiller(t)
	}
	return b
}

func (b *tokenBuffer) all() span { return span{lo: 0, hi: len(b.tokens)} }

// content returns the indices in s that are not filler words.
func (b *tokenBuffer) content(s span) []int {
	idx := make([]int, 0, s.len())
	for i := s.lo; i < s.hi; i++ {
		if !b.filler[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (b *tokenBuffer) wholeNumber(i int) (domain.Entry, bool) {
	r := &b.whole[i]
	if !r.done {
		r.entry, r.ok = b.matcher.ResolveWholeNumber(b.tokens[i])
		r.done = true
	}
	return r.entry, r.ok
}

// denominator resolves token i as a fraction word. A token spelled
// exactly as a whole-number word is never a denominator.
func (b *tokenBuffer) denominator(i int) (int64, bool) {
	r := &b.denominators[i]
	if !r.done {
		if !b.matcher.Vocabulary().WholeNumbers.Contains(b.tokens[i]) {
			r.value, r.ok = b.matcher.MatchDenominator(b.tokens[i])
		}
		r.done = true
	}
	return r.value, r.ok
}

func (b *tokenBuffer) digit(i int) (int64, bool) {
	return b.matcher.ResolveDigit(b.tokens[i])
}

func (b *tokenBuffer) isArticle(i int) bool {
	_, ok := b.matcher.MatchIndefiniteArticle(b.tokens[i])
	return ok
}

func (b *tokenBuffer) isNegative(i int) bool {
	_, ok := b.matcher.MatchNegativeSignifier(b.tokens[i])
	return ok
}

func (b *tokenBuffer) isDecimalSeparator(i int) bool {
	_, ok := b.matcher.MatchDecimalSeparator(b.tokens[i])
	return ok
}

func (b *tokenBuffer) isFractionSeparator(i int) bool {
	_, ok := b.matcher.MatchFractionSeparator(b.tokens[i])
	return ok
}
