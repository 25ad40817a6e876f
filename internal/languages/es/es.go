// Package es holds the Spanish number vocabulary and grammar.
package es

import (
	"strings"
	"sync"

	"github.com/baditaflorin/go_word2num/internal/core/domain"
	"github.com/baditaflorin/go_word2num/internal/core/parser"
)

// Code is the language code of Spanish.
const Code = "es"

var digits = []domain.Entry{
	{Word: "cero", Value: 0},
	{Word: "uno", Value: 1},
	{Word: "dos", Value: 2},
	{Word: "tres", Value: 3},
	{Word: "cuatro", Value: 4},
	{Word: "cinco", Value: 5},
	{Word: "seis", Value: 6},
	{Word: "siete", Value: 7},
	{Word: "ocho", Value: 8},
	{Word: "nueve", Value: 9},
}

// Spanish lexicalises the hundreds, so they are units in their own right.
// Scales follow the long scale: billón is a million millions.
var units = []domain.Entry{
	{Word: "cien", Value: 100},
	{Word: "ciento", Value: 100},
	{Word: "doscientos", Value: 200},
	{Word: "doscientas", Value: 200},
	{Word: "trescientos", Value: 300},
	{Word: "trescientas", Value: 300},
	{Word: "cuatrocientos", Value: 400},
	{Word: "cuatrocientas", Value: 400},
	{Word: "quinientos", Value: 500},
	{Word: "quinientas", Value: 500},
	{Word: "seiscientos", Value: 600},
	{Word: "seiscientas", Value: 600},
	{Word: "setecientos", Value: 700},
	{Word: "setecientas", Value: 700},
	{Word: "ochocientos", Value: 800},
	{Word: "ochocientas", Value: 800},
	{Word: "novecientos", Value: 900},
	{Word: "novecientas", Value: 900},
	{Word: "mil", Value: 1_000},
	{Word: "millón", Value: 1_000_000},
	{Word: "millones", Value: 1_000_000},
	{Word: "billón", Value: 1_000_000_000_000},
	{Word: "billones", Value: 1_000_000_000_000},
	{Word: "trillón", Value: 1_000_000_000_000_000_000},
	{Word: "trillones", Value: 1_000_000_000_000_000_000},
}

var wholeNumbers = []domain.Entry{
	{Word: "un", Value: 1},
	{Word: "una", Value: 1},
	{Word: "diez", Value: 10},
	{Word: "once", Value: 11},
	{Word: "doce", Value: 12},
	{Word: "trece", Value: 13},
	{Word: "catorce", Value: 14},
	{Word: "quince", Value: 15},
	{Word: "dieciséis", Value: 16},
	{Word: "diecisiete", Value: 17},
	{Word: "dieciocho", Value: 18},
	{Word: "diecinueve", Value: 19},
	{Word: "veinte", Value: 20},
	{Word: "veintiuno", Value: 21},
	{Word: "veintiún", Value: 21},
	{Word: "veintidós", Value: 22},
	{Word: "veintitrés", Value: 23},
	{Word: "veinticuatro", Value: 24},
	{Word: "veinticinco", Value: 25},
	{Word: "veintiséis", Value: 26},
	{Word: "veintisiete", Value: 27},
	{Word: "veintiocho", Value: 28},
	{Word: "veintinueve", Value: 29},
	{Word: "treinta", Value: 30},
	{Word: "cuarenta", Value: 40},
	{Word: "cincuenta", Value: 50},
	{Word: "sesenta", Value: 60},
	{Word: "setenta", Value: 70},
	{Word: "ochenta", Value: 80},
	{Word: "noventa", Value: 90},
}

// Fraction words not formed with the "avo" suffix. Masculine forms come
// first so they are the spelling chosen for a value.
var irregularDenominators = []domain.Entry{
	{Word: "medio", Value: 2},
	{Word: "media", Value: 2},
	{Word: "mitad", Value: 2},
	{Word: "tercio", Value: 3},
	{Word: "tercera", Value: 3},
	{Word: "cuarto", Value: 4},
	{Word: "cuarta", Value: 4},
	{Word: "quinto", Value: 5},
	{Word: "quinta", Value: 5},
	{Word: "sexto", Value: 6},
	{Word: "sexta", Value: 6},
	{Word: "séptimo", Value: 7},
	{Word: "séptima", Value: 7},
	{Word: "octavo", Value: 8},
	{Word: "octava", Value: 8},
	{Word: "noveno", Value: 9},
	{Word: "novena", Value: 9},
	{Word: "décimo", Value: 10},
	{Word: "décima", Value: 10},
	{Word: "centésimo", Value: 100},
	{Word: "centésima", Value: 100},
	{Word: "milésimo", Value: 1_000},
	{Word: "milésima", Value: 1_000},
	{Word: "millonésimo", Value: 1_000_000},
	{Word: "millonésima", Value: 1_000_000},
}

// Vocabulary returns the shared Spanish vocabulary.
var Vocabulary = sync.OnceValues(func() (*domain.Vocabulary, error) {
	return domain.NewVocabulary(domain.VocabularyConfig{
		Digits:                digits,
		Units:                 units,
		WholeNumbers:          wholeNumbers,
		IrregularDenominators: irregularDenominators,
		FractionSeparators:    []string{"y"},
		DecimalSeparators:     []string{"punto", "coma"},
		NegativeSignifiers:    []string{"menos", "negativo", "negativos", "negativa", "negativas"},
		IndefiniteArticles:    []string{"un", "una", "la"},
	})
})

// Samples are phrases used to warm up Spanish parsers.
var Samples = []string{
	"veintitrés",
	"dos mil novecientos cincuenta y seis",
	"uno y cuarto",
	"tres coma uno cuatro",
	"dos negativo",
	"cinco dieciseisavos",
}

// Grammar is the Spanish grammar.
type Grammar struct{}

var _ parser.Grammar = Grammar{}

// IsFiller drops the "y" of "cincuenta y tres".
func (Grammar) IsFiller(word string) bool { return word == "y" }

// NegativePosition returns parser.TrailingThenLeading.
func (Grammar) NegativePosition() parser.NegativePosition {
	return parser.TrailingThenLeading
}

// SingularDenominator drops one trailing "s".
func (Grammar) SingularDenominator(word string) string {
	return strings.TrimSuffix(word, "s")
}

// DenominatorStem strips "avo" or "ava": "doceavo" becomes "doce".
func (Grammar) DenominatorStem(word string) (string, bool) {
	for _, suffix := range []string{"avo", "ava"} {
		if stem, ok := strings.CutSuffix(word, suffix); ok && stem != "" {
			return stem, true
		}
	}
	return "", false
}

// RegularDenominator appends "avo".
func (Grammar) RegularDenominator(whole string) string { return whole + "avo" }
