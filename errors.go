package word2num

import "github.com/baditaflorin/go_word2num/internal/core/domain"

var (
	// ErrUnsupportedLanguage is returned by New for an unknown language code.
	ErrUnsupportedLanguage = domain.ErrUnsupportedLanguage
	// ErrInvalidThreshold is returned by New for a fuzzy threshold outside [0, 100].
	ErrInvalidThreshold = domain.ErrInvalidThreshold
)
