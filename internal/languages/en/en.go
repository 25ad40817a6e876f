// Package en holds the English number vocabulary and grammar.
package en

import (
	"strings"
	"sync"

	"github.com/baditaflorin/go_word2num/internal/core/domain"
	"github.com/baditaflorin/go_word2num/internal/core/parser"
)

// Code is the language code of English.
const Code = "en"

var digits = []domain.Entry{
	{Word: "zero", Value: 0},
	{Word: "one", Value: 1},
	{Word: "two", Value: 2},
	{Word: "three", Value: 3},
	{Word: "four", Value: 4},
	{Word: "five", Value: 5},
	{Word: "six", Value: 6},
	{Word: "seven", Value: 7},
	{Word: "eight", Value: 8},
	{Word: "nine", Value: 9},
}

var units = []domain.Entry{
	{Word: "hundred", Value: 100},
	{Word: "thousand", Value: 1_000},
	{Word: "million", Value: 1_000_000},
	{Word: "billion", Value: 1_000_000_000},
	{Word: "trillion", Value: 1_000_000_000_000},
	{Word: "quadrillion", Value: 1_000_000_000_000_000},
	{Word: "quintillion", Value: 1_000_000_000_000_000_000},
}

var wholeNumbers = []domain.Entry{
	{Word: "ten", Value: 10},
	{Word: "eleven", Value: 11},
	{Word: "twelve", Value: 12},
	{Word: "thirteen", Value: 13},
	{Word: "fourteen", Value: 14},
	{Word: "fifteen", Value: 15},
	{Word: "sixteen", Value: 16},
	{Word: "seventeen", Value: 17},
	{Word: "eighteen", Value: 18},
	{Word: "nineteen", Value: 19},
	{Word: "twenty", Value: 20},
	{Word: "thirty", Value: 30},
	{Word: "forty", Value: 40},
	{Word: "fifty", Value: 50},
	{Word: "sixty", Value: 60},
	{Word: "seventy", Value: 70},
	{Word: "eighty", Value: 80},
	{Word: "ninety", Value: 90},
}

// Fraction words not formed by appending "th" to a whole number.
var irregularDenominators = []domain.Entry{
	{Word: "half", Value: 2},
	{Word: "quarter", Value: 4},
	{Word: "third", Value: 3},
	{Word: "fourth", Value: 4},
	{Word: "fifth", Value: 5},
	{Word: "eighth", Value: 8},
	{Word: "ninth", Value: 9},
	{Word: "twelfth", Value: 12},
	{Word: "twentieth", Value: 20},
	{Word: "thirtieth", Value: 30},
	{Word: "fortieth", Value: 40},
	{Word: "fiftieth", Value: 50},
	{Word: "sixtieth", Value: 60},
	{Word: "seventieth", Value: 70},
	{Word: "eightieth", Value: 80},
	{Word: "ninetieth", Value: 90},
}

// Vocabulary returns the shared English vocabulary.
var Vocabulary = sync.OnceValues(func() (*domain.Vocabulary, error) {
	return domain.NewVocabulary(domain.VocabularyConfig{
		Digits:                digits,
		Units:                 units,
		WholeNumbers:          wholeNumbers,
		IrregularDenominators: irregularDenominators,
		FractionSeparators:    []string{"and"},
		DecimalSeparators:     []string{"point", "dot"},
		NegativeSignifiers:    []string{"negative", "minus"},
		IndefiniteArticles:    []string{"a", "an"},
	})
})

// Samples are phrases used to warm up English parsers.
var Samples = []string{
	"twenty three",
	"two thousand nine hundred and fifty six",
	"one and a quarter",
	"three point one four",
	"minus eight",
	"five sixteenths",
}

// Grammar is the English grammar.
type Grammar struct{}

var _ parser.Grammar = Grammar{}

// IsFiller drops the "and" of "one hundred and five".
func (Grammar) IsFiller(word string) bool { return word == "and" }

// NegativePosition returns parser.Leading.
func (Grammar) NegativePosition() parser.NegativePosition { return parser.Leading }

// SingularDenominator maps "halves" to "half" and drops one trailing "s".
func (Grammar) SingularDenominator(word string) string {
	if stem, ok := strings.CutSuffix(word, "ves"); ok && stem != "" {
		return stem + "f"
	}
	return strings.TrimSuffix(word, "s")
}

// DenominatorStem strips "th": "tenth" becomes "ten".
func (Grammar) DenominatorStem(word string) (string, bool) {
	stem, ok := strings.CutSuffix(word, "th")
	if !ok || stem == "" {
		return "", false
	}
	return stem, true
}

// RegularDenominator appends "th".
func (Grammar) RegularDenominator(whole string) string { return whole + "th" }
