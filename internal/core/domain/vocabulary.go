package domain

import (
	"fmt"
	"sort"
)

// Entry maps a number word to its value.
type Entry struct {
	Word  string
	Value int64
}

// Lexicon is an ordered, read-only set of number words. Definition order is
// preserved and is the iteration order used for fuzzy tie-breaks.
type Lexicon struct {
	entries []Entry
	words   []string
	index   map[string]int64
}

// NewLexicon builds a lexicon from the given entry groups in order. A word
// repeated with the same value is kept once; a word repeated with a
// different value is an error.
func NewLexicon(groups ...[]Entry) (Lexicon, error) {
	lex := Lexicon{index: make(map[string]int64)}
	for _, group := range groups {
		for _, e := range group {
			if existing, ok := lex.index[e.Word]; ok {
				if existing != e.Value {
					return Lexicon{}, fmt.Errorf("%w: %q is %d and %d", ErrConflictingWord, e.Word, existing, e.Value)
				}
				continue
			}
			lex.index[e.Word] = e.Value
			lex.entries = append(lex.entries, e)
			lex.words = append(lex.words, e.Word)
		}
	}
	return lex, nil
}

// Words returns the lexicon words in definition order. The slice must not be modified.
func (l Lexicon) Words() []string { return l.words }

// Entries returns the lexicon entries in definition order. The slice must not be modified.
func (l Lexicon) Entries() []Entry { return l.entries }

// Len returns the number of words.
func (l Lexicon) Len() int { return len(l.entries) }

// Contains reports whether word is defined.
func (l Lexicon) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Value returns the value of word.
func (l Lexicon) Value(word string) (int64, bool) {
	v, ok := l.index[word]
	return v, ok
}

// WordFor returns the first word defined with value.
func (l Lexicon) WordFor(value int64) (string, bool) {
	for _, e := range l.entries {
		if e.Value == value {
			return e.Word, true
		}
	}
	return "", false
}

// WordList is an ordered, read-only set of marker words.
type WordList struct {
	words []string
	set   map[string]struct{}
}

// NewWordList builds a word list, dropping duplicates.
func NewWordList(words ...string) WordList {
	wl := WordList{set: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, ok := wl.set[w]; ok {
			continue
		}
		wl.set[w] = struct{}{}
		wl.words = append(wl.words, w)
	}
	return wl
}

// Words returns the list in definition order. The slice must not be modified.
func (wl WordList) Words() []string { return wl.words }

// Contains reports whether word is in the list.
func (wl WordList) Contains(word string) bool {
	_, ok := wl.set[word]
	return ok
}

// VocabularyConfig is the raw per-language word data.
type VocabularyConfig struct {
	Digits []Entry
	Units  []Entry
	// WholeNumbers lists whole-number words beyond digits and units
	// (teens, tens, base forms such as articles meaning one).
	WholeNumbers          []Entry
	IrregularDenominators []Entry
	FractionSeparators    []string
	DecimalSeparators     []string
	NegativeSignifiers    []string
	IndefiniteArticles    []string
}

// Vocabulary holds the number words of one language. It is immutable once
// built and safe to share between goroutines.
type Vocabulary struct {
	Digits                Lexicon
	WholeNumbers          Lexicon
	Units                 Lexicon
	IrregularDenominators Lexicon
	FractionSeparators    WordList
	DecimalSeparators     WordList
	NegativeSignifiers    WordList
	IndefiniteArticles    WordList

	unitsDescending []Entry
	unitRank        map[string]int
}

// NewVocabulary validates cfg and builds a vocabulary. WholeNumbers is
// always the union of digits, units and the extra whole-number words, in
// that order.
func NewVocabulary(cfg VocabularyConfig) (*Vocabulary, error) {
	for _, d := range cfg.Digits {
		if d.Value < 0 || d.Value > 9 {
			return nil, fmt.Errorf("%w: %q is %d", ErrInvalidDigit, d.Word, d.Value)
		}
	}

	digits, err := NewLexicon(cfg.Digits)
	if err != nil {
		return nil, fmt.Errorf("digits: %w", err)
	}
	units, err := NewLexicon(cfg.Units)
	if err != nil {
		return nil, fmt.Errorf("units: %w", err)
	}
	whole, err := NewLexicon(cfg.Digits, cfg.Units, cfg.WholeNumbers)
	if err != nil {
		return nil, fmt.Errorf("whole numbers: %w", err)
	}
	irregular, err := NewLexicon(cfg.IrregularDenominators)
	if err != nil {
		return nil, fmt.Errorf("irregular denominators: %w", err)
	}

	v := &Vocabulary{
		Digits:                digits,
		WholeNumbers:          whole,
		Units:                 units,
		IrregularDenominators: irregular,
		FractionSeparators:    NewWordList(cfg.FractionSeparators...),
		DecimalSeparators:     NewWordList(cfg.DecimalSeparators...),
		NegativeSignifiers:    NewWordList(cfg.NegativeSignifiers...),
		IndefiniteArticles:    NewWordList(cfg.IndefiniteArticles...),
	}

	v.unitsDescending = append([]Entry(nil), units.Entries()...)
	sort.SliceStable(v.unitsDescending, func(i, j int) bool {
		return v.unitsDescending[i].Value > v.unitsDescending[j].Value
	})
	v.unitRank = make(map[string]int, len(v.unitsDescending))
	for i, e := range v.unitsDescending {
		v.unitRank[e.Word] = i
	}
	return v, nil
}

// UnitsDescending returns the unit words ordered by decreasing value.
// Units of equal value keep their definition order.
func (v *Vocabulary) UnitsDescending() []Entry { return v.unitsDescending }

// UnitRank returns the position of word in UnitsDescending.
func (v *Vocabulary) UnitRank(word string) (int, bool) {
	r, ok := v.unitRank[word]
	return r, ok
}
