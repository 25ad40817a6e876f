package parser

import "github.com/baditaflorin/go_word2num/internal/core/matcher"

// NegativePosition tells the parser where a language places its negative
// signifier.
type NegativePosition int

const (
	// Leading checks only the first token ("minus eight").
	Leading NegativePosition = iota
	// Trailing checks only the last token.
	Trailing
	// TrailingThenLeading checks the last token, then the first
	// ("dos negativo", "menos ocho").
	TrailingThenLeading
)

func (p NegativePosition) String() string {
	switch p {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	case TrailingThenLeading:
		return "trailing-then-leading"
	default:
		return "unknown"
	}
}

// Grammar holds the points where a language deviates from the shared
// number grammar.
type Grammar interface {
	matcher.Morphology
	// IsFiller reports whether word is a conjunction dropped inside
	// whole numbers ("one hundred and five").
	IsFiller(word string) bool
	NegativePosition() NegativePosition
}
