package word2num

import (
	"strconv"
	"sync"
)

// converters holds one shared converter per language and threshold.
var converters sync.Map

// Convert parses text with a shared converter for languageCode at the given
// fuzzy threshold. Converters are built on first use and reused.
func Convert(text, languageCode string, fuzzyThreshold int) (float64, bool, error) {
	key := languageCode + "|" + strconv.Itoa(fuzzyThreshold)
	if w, ok := converters.Load(key); ok {
		value, parsed := w.(*Word2Num).Parse(text)
		return value, parsed, nil
	}

	w, err := New(languageCode, WithFuzzyThreshold(fuzzyThreshold), WithDiscardLogger())
	if err != nil {
		return 0, false, err
	}
	actual, _ := converters.LoadOrStore(key, w)
	value, parsed := actual.(*Word2Num).Parse(text)
	return value, parsed, nil
}
