package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleTokenizer(t *testing.T) {
	tok := NewSimpleTokenizer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"punctuation", "One, two! Three.", []string{"one", "two", "three"}},
		{"empty", "", []string{}},
		{"whitespace only", "   \t\n", []string{}},
		{"hyphenated", "twenty-two point zero", []string{"twenty", "two", "point", "zero"}},
		{"accented", "Veintitrés MILLÓN", []string{"veintitrés", "millón"}},
		{"decomposed accent", "veintitre\u0301s", []string{"veintitr\u00e9s"}},
		{"digits dropped", "one 2 three", []string{"one", "three"}},
		{"only digits", "123 456", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Tokenize(tt.text))
		})
	}
}
