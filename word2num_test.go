package word2num_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	word2num "github.com/baditaflorin/go_word2num"
)

func newConverter(t *testing.T, lang string, opts ...word2num.Option) *word2num.Word2Num {
	t.Helper()
	opts = append([]word2num.Option{word2num.WithDiscardLogger()}, opts...)
	w, err := word2num.New(lang, opts...)
	require.NoError(t, err)
	return w
}

type phrase struct {
	text string
	want float64
}

func checkPhrases(t *testing.T, w *word2num.Word2Num, phrases []phrase) {
	t.Helper()
	for _, p := range phrases {
		t.Run(p.text, func(t *testing.T) {
			got, ok := w.Parse(p.text)
			require.True(t, ok, "expected %q to parse", p.text)
			assert.InDelta(t, p.want, got, 1e-9)
		})
	}
}

func checkRejected(t *testing.T, w *word2num.Word2Num, texts []string) {
	t.Helper()
	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			_, ok := w.Parse(text)
			assert.False(t, ok, "expected %q to be rejected", text)
		})
	}
}

func TestEnglish(t *testing.T) {
	w := newConverter(t, "en")

	t.Run("integers", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"one", 1},
			{"twenty three", 23},
			{"five hundred", 500},
			{"seven thousand", 7000},
			{"one hundred and three", 103},
			{"hundred", 100},
		})
	})
	t.Run("decimals", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"one point five", 1.5},
			{"three point one four", 3.14},
			{"twenty-two point zero zero three six", 22.0036},
			{"point zero zero three six", 0.0036},
		})
	})
	t.Run("fractions", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"half", 0.5},
			{"one half", 0.5},
			{"one and a quarter", 1.25},
			{"one and three tenths", 1.3},
			{"a third", 1.0 / 3},
			{"three quarters", 0.75},
			{"five sixteenths", 5.0 / 16},
		})
	})
	t.Run("negatives", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"minus eight", -8},
			{"negative three fifths", -0.6},
		})
	})
	t.Run("complex", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"two thousand nine hundred and fifty six", 2956},
			{"fifty-seven thousand four hundred and twenty-one", 57421},
			{"one million four hundred and twenty-six thousand nine hundred and eighty-seven", 1426987},
			{"nine billion nine hundred ninety nine million nine hundred ninety nine thousand nine hundred ninety nine", 9999999999},
			{"eight billion six hundred and ninety-four million three hundred thousand one hundred and seventy-two and three-quarters", 8694300172.75},
		})
	})
	t.Run("unit boundaries", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"nine hundred ninety nine thousand nine hundred ninety nine", 999999},
			{"one million", 1000000},
			{"twenty billion", 20000000000},
			{"three trillion", 3000000000000},
		})
	})
	t.Run("small numbers", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"one thousandth", 0.001},
			{"one millionth", 0.000001},
		})
	})
	t.Run("digit sequences", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"five five nine two", 5592},
			{"zero zero one nine two", 192},
			{"eight two seven nine zero", 82790},
		})
	})
	t.Run("misspellings", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"fivve", 5},
			{"onee point fiv", 1.5},
			{"thre and a hlf", 3.5},
		})
		loose := newConverter(t, "en", word2num.WithFuzzyThreshold(60))
		checkPhrases(t, loose, []phrase{
			{"twoo hunrdered and twienty-too", 222},
			{"soxteeeen", 16},
		})
	})
	t.Run("unrecognizable", func(t *testing.T) {
		checkRejected(t, w, []string{"giraffe", "five walruses", "one point six capybaras", ""})
	})
	t.Run("exact only", func(t *testing.T) {
		exact := newConverter(t, "en", word2num.WithFuzzyThreshold(word2num.ExactThreshold))
		checkRejected(t, exact, []string{"fivve"})
		checkPhrases(t, exact, []phrase{{"five", 5}})
	})
}

func TestSpanish(t *testing.T) {
	w := newConverter(t, "es")

	t.Run("integers", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"uno", 1},
			{"veintitrés", 23},
			{"quinientos", 500},
			{"siete mil", 7000},
			{"ciento tres", 103},
			{"mil", 1000},
			{"cien", 100},
		})
	})
	t.Run("decimals", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"uno punto cinco", 1.5},
			{"tres coma uno cuatro", 3.14},
			{"veintidós punto cero cero tres seis", 22.0036},
		})
	})
	t.Run("fractions", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"la mitad", 0.5},
			{"medio", 0.5},
			{"uno y cuarto", 1.25},
			{"uno y tres décimos", 1.3},
			{"un tercio", 1.0 / 3},
			{"tres cuartas", 0.75},
			{"cinco dieciseisavos", 5.0 / 16},
			{"un catorceavo", 1.0 / 14},
		})
	})
	t.Run("negatives", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"menos ocho", -8},
			{"dos negativo", -2},
			{"tres quintas negativas", -0.6},
		})
	})
	t.Run("complex", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"dos mil novecientos cincuenta y seis", 2956},
			{"cincuenta y siete mil cuatrocientos veintiuno", 57421},
			{"un millón cuatrocientos veintiséis mil novecientos ochenta y siete", 1426987},
			{"nueve mil novecientos noventa y nueve millones novecientos noventa y nueve mil novecientos noventa y nueve", 9999999999},
			{"ocho mil seiscientos noventa y cuatro millones trescientos mil ciento setenta y dos y tres cuartos", 8694300172.75},
		})
	})
	t.Run("large numbers", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"un millón", 1000000},
			{"dos mil millones", 2000000000},
			{"tres billones", 3000000000000},
		})
	})
	t.Run("small numbers", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"milésima", 0.001},
			{"un millonésimo", 0.000001},
		})
	})
	t.Run("digit sequences", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"cinco cinco nueve dos", 5592},
			{"cero cero uno nueve dos", 192},
			{"ocho dos siete nueve cero", 82790},
		})
	})
	t.Run("misspellings", func(t *testing.T) {
		checkPhrases(t, w, []phrase{
			{"quatro", 4},
			{"unoo punto cincco", 1.5},
			{"tre y medip", 3.5},
		})
		loose := newConverter(t, "es", word2num.WithFuzzyThreshold(60))
		checkPhrases(t, loose, []phrase{
			{"dociento veintidos", 222},
			{"diecises", 16},
		})
	})
	t.Run("unrecognizable", func(t *testing.T) {
		checkRejected(t, w, []string{"jirafa", "cinco morsas", "uno punto seis carpinchos"})
	})
	t.Run("exact only", func(t *testing.T) {
		exact := newConverter(t, "es", word2num.WithFuzzyThreshold(word2num.ExactThreshold))
		checkRejected(t, exact, []string{"cuotro"})
	})
}

func TestZeroIsAResult(t *testing.T) {
	for _, lang := range []string{"en", "es"} {
		w := newConverter(t, lang)
		text := map[string]string{"en": "zero", "es": "cero"}[lang]

		got, ok := w.Parse(text)
		require.True(t, ok, lang)
		assert.Equal(t, 0.0, got)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := word2num.New("xx", word2num.WithDiscardLogger())
	assert.ErrorIs(t, err, word2num.ErrUnsupportedLanguage)

	for _, threshold := range []int{-1, 101} {
		_, err = word2num.New("en", word2num.WithDiscardLogger(), word2num.WithFuzzyThreshold(threshold))
		assert.ErrorIs(t, err, word2num.ErrInvalidThreshold)
	}

	_, err = word2num.New("en", word2num.WithDiscardLogger(), word2num.WithMaxTokens(0))
	assert.Error(t, err)

	_, err = word2num.New("en", word2num.WithDiscardLogger(), word2num.WithMatchCache(-1))
	assert.Error(t, err)
}

func TestNewWithDefaultLogger(t *testing.T) {
	w, err := word2num.New("en")
	require.NoError(t, err)

	got, ok := w.Parse("seven")
	require.True(t, ok)
	assert.Equal(t, 7.0, got)
}

func TestAccessors(t *testing.T) {
	w := newConverter(t, "es", word2num.WithFuzzyThreshold(70))
	assert.Equal(t, "es", w.Language())
	assert.Equal(t, 70, w.FuzzyThreshold())
	assert.Equal(t, "Word2Num(language=es, fuzzyThreshold=70)", w.String())
	assert.Equal(t, []string{"en", "es"}, word2num.SupportedLanguages())
}

func TestMaxTokens(t *testing.T) {
	w := newConverter(t, "en", word2num.WithMaxTokens(2))
	_, ok := w.Parse("one two three")
	assert.False(t, ok)

	got, ok := w.Parse("one two")
	require.True(t, ok)
	assert.Equal(t, 12.0, got)
}

func TestMatchCacheGivesSameResults(t *testing.T) {
	plain := newConverter(t, "en")
	cached := newConverter(t, "en", word2num.WithMatchCache(256))

	for _, text := range []string{"fivve", "thre and a hlf", "two thousand nine hundred and fifty six", "giraffe"} {
		for i := 0; i < 3; i++ {
			want, wantOK := plain.Parse(text)
			got, gotOK := cached.Parse(text)
			assert.Equal(t, wantOK, gotOK, text)
			assert.Equal(t, want, got, text)
		}
	}
}

func TestIdempotentAndConcurrent(t *testing.T) {
	w := newConverter(t, "es", word2num.WithMatchCache(64))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				got, ok := w.Parse("tre y medip")
				assert.True(t, ok)
				assert.InDelta(t, 3.5, got, 1e-9)

				got, ok = w.Parse("dos mil novecientos cincuenta y seis")
				assert.True(t, ok)
				assert.Equal(t, 2956.0, got)
			}
		}()
	}
	wg.Wait()
}

func TestWarmUp(t *testing.T) {
	cfg := word2num.WarmUpConfig{Concurrency: 2, Iterations: 3}
	w := newConverter(t, "en", word2num.WithWarmUpConfig(cfg), word2num.WithWarmUp(true))

	parsed := w.WarmUp(context.Background())
	assert.Greater(t, parsed, 0)

	got, ok := w.Parse("fivve")
	require.True(t, ok)
	assert.Equal(t, 5.0, got)
}

func TestConvert(t *testing.T) {
	got, ok, err := word2num.Convert("fivve", "en", 80)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5.0, got)

	_, ok, err = word2num.Convert("fivve", "en", 100)
	require.NoError(t, err)
	assert.False(t, ok)

	got, ok, err = word2num.Convert("dos negativo", "es", 80)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -2.0, got)

	_, _, err = word2num.Convert("one", "xx", 80)
	assert.ErrorIs(t, err, word2num.ErrUnsupportedLanguage)

	_, _, err = word2num.Convert("one", "en", 120)
	assert.ErrorIs(t, err, word2num.ErrInvalidThreshold)
}
