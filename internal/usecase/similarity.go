package usecase

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Ratio returns the normalized indel similarity of a and b on a 0-100 scale:
// 100 * (1 - indel / (len(a)+len(b))), with indel = len(a)+len(b) - 2*LCS.
// Lengths are counted in runes. Two empty strings are identical.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	if a == b {
		return 100
	}
	lcs := edlib.LCS(a, b)
	return 100 * float64(2*lcs) / float64(total)
}
