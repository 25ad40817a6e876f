package ports

// NumberParser converts a textual number phrase into its numeric value.
// The boolean result is false when the phrase could not be parsed.
type NumberParser interface {
	Parse(text string) (float64, bool)
}
