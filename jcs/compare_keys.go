package jcs

import (
	"slices"
	"strings"
	"unicode/utf16"
)

// CompareKeys orders object member names by their UTF-16 code units,
// left to right. This total order is the single member-ordering rule of
// the canonical form. Note it differs from code-point order for
// supplementary-plane characters, whose high surrogates sort below
// U+E000..U+FFFF.
func CompareKeys(a, b string) int {
	if isASCII(a) && isASCII(b) {
		// byte order and UTF-16 order agree on ASCII
		return strings.Compare(a, b)
	}
	return slices.Compare(keyUnits(a), keyUnits(b))
}

func keyUnits(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
