package matcher

import (
	"math"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Ratio returns the indel similarity of a and b as an integer percentage.
// The score is 2*LCS/(len(a)+len(b)) over runes, rounded half to even.
// 100 is reserved for identical strings.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	lcs := matchr.LongestCommonSubsequence(a, b)
	score := int(math.RoundToEven(200 * float64(lcs) / float64(total)))
	if score > 99 {
		score = 99
	}
	return score
}
