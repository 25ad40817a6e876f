package ports

// Tokenizer defines the interface for splitting text into lowercase word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
