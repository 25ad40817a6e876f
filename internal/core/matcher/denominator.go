package matcher

import "github.com/baditaflorin/go_word2num/internal/ports"

// MatchDenominator resolves a fraction word such as "fifth", "tenths" or
// "doceavos" to its denominator value. Irregular and regular readings are
// both attempted on the singular form; the better scoring one wins and
// ties go to the irregular reading.
func (m *Matcher) MatchDenominator(word string) (int64, bool) {
	key := m.keyPrefix + "d|" + word
	if cached, ok := m.cached(key); ok {
		return cached.Value, cached.Found
	}

	value, ok := m.matchDenominator(word)
	m.store(key, ports.CachedMatch{Value: value, Found: ok})
	return value, ok
}

func (m *Matcher) matchDenominator(word string) (int64, bool) {
	singular := m.morph.SingularDenominator(word)

	irregular, irregularOK := m.matchIrregularDenominator(singular)
	regular, regularOK := m.matchRegularDenominator(singular)

	switch {
	case irregularOK && regularOK:
		if regular.Score > irregular.Score {
			return regular.Value, true
		}
		return irregular.Value, true
	case irregularOK:
		return irregular.Value, true
	case regularOK:
		return regular.Value, true
	default:
		return 0, false
	}
}

type scoredValue struct {
	Value int64
	Score int
}

func (m *Matcher) matchIrregularDenominator(word string) (scoredValue, bool) {
	match, ok := m.bestMatch(word, m.vocab.IrregularDenominators.Words())
	if !ok {
		return scoredValue{}, false
	}
	value, _ := m.vocab.IrregularDenominators.Value(match.Word)
	return scoredValue{Value: value, Score: match.Score}, true
}

// matchRegularDenominator scores word against the correct denominator
// spelling of the whole number its stem resolves to, so a good stem match
// with a poor full form is rejected.
func (m *Matcher) matchRegularDenominator(word string) (scoredValue, bool) {
	stem, ok := m.morph.DenominatorStem(word)
	if !ok {
		return scoredValue{}, false
	}
	base, ok := m.bestMatch(stem, m.vocab.WholeNumbers.Words())
	if !ok {
		return scoredValue{}, false
	}
	value, _ := m.vocab.WholeNumbers.Value(base.Word)

	correct := m.denominatorForm(base.Word, value)
	score := Ratio(word, correct)
	if score < m.threshold {
		return scoredValue{}, false
	}
	return scoredValue{Value: value, Score: score}, true
}

// denominatorForm returns the denominator spelling of a whole-number word,
// preferring the irregular word for that value when one exists.
func (m *Matcher) denominatorForm(whole string, value int64) string {
	if irregular, ok := m.vocab.IrregularDenominators.WordFor(value); ok {
		return irregular
	}
	return m.morph.RegularDenominator(whole)
}
