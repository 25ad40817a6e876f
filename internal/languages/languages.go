// Package languages registers the supported languages.
package languages

import (
	"fmt"
	"sort"

	"github.com/baditaflorin/go_word2num/internal/core/domain"
	"github.com/baditaflorin/go_word2num/internal/core/parser"
	"github.com/baditaflorin/go_word2num/internal/languages/en"
	"github.com/baditaflorin/go_word2num/internal/languages/es"
)

// Language bundles everything needed to build parsers for one language.
type Language struct {
	Code       string
	Name       string
	Vocabulary *domain.Vocabulary
	Grammar    parser.Grammar
	// Samples are representative phrases, used for warm-up.
	Samples []string
}

type definition struct {
	name       string
	vocabulary func() (*domain.Vocabulary, error)
	grammar    parser.Grammar
	samples    []string
}

var registry = map[string]definition{
	en.Code: {name: "English", vocabulary: en.Vocabulary, grammar: en.Grammar{}, samples: en.Samples},
	es.Code: {name: "Spanish", vocabulary: es.Vocabulary, grammar: es.Grammar{}, samples: es.Samples},
}

// Lookup returns the language registered under code.
func Lookup(code string) (Language, error) {
	def, ok := registry[code]
	if !ok {
		return Language{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	vocab, err := def.vocabulary()
	if err != nil {
		return Language{}, fmt.Errorf("language %q: %w", code, err)
	}
	return Language{
		Code:       code,
		Name:       def.name,
		Vocabulary: vocab,
		Grammar:    def.grammar,
		Samples:    def.samples,
	}, nil
}

// Codes returns the supported language codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
