package ports

// CachedMatch is a memoised word match. Found is false for a remembered miss.
type CachedMatch struct {
	Word  string
	Value int64
	Found bool
}

// MatchCache memoises word matcher lookups. Implementations must be safe
// for concurrent use.
type MatchCache interface {
	Get(key string) (CachedMatch, bool)
	Add(key string, match CachedMatch)
}
