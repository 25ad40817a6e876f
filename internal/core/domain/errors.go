package domain

import "errors"

var (
	// ErrUnsupportedLanguage is returned when no vocabulary is registered for a language code.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrInvalidThreshold is returned for fuzzy thresholds outside [0, 100].
	ErrInvalidThreshold = errors.New("fuzzy threshold must be between 0 and 100")
	// ErrConflictingWord is returned when a vocabulary defines a word twice with different values.
	ErrConflictingWord = errors.New("word defined with conflicting values")
	// ErrInvalidDigit is returned when a digit word maps outside 0-9.
	ErrInvalidDigit = errors.New("digit value must be between 0 and 9")
)
