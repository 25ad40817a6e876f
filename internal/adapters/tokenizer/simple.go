package tokenizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_word2num/internal/ports"
)

// wordPattern matches a letter followed by letters or combining marks, so
// accented words survive both composed and decomposed input.
var wordPattern = regexp.MustCompile(`\p{L}[\p{L}\p{M}]*`)

// SimpleTokenizer splits text into lowercase alphabetic words. Digits,
// punctuation and whitespace are discarded.
type SimpleTokenizer struct{}

// NewSimpleTokenizer creates a new simple tokenizer.
func NewSimpleTokenizer() ports.Tokenizer {
	return &SimpleTokenizer{}
}

// Tokenize returns the words of text in order. It never returns nil.
func (t *SimpleTokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	text = strings.ToLower(norm.NFC.String(text))
	words := wordPattern.FindAllString(text, -1)
	if words == nil {
		return []string{}
	}
	return words
}
