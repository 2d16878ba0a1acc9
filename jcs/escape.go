package jcs

import (
	"fmt"
	"strings"
)

// Escape returns the canonical escaped form of s, applied to both member
// names and string values before quoting. Only the two-character escapes
// for \t \b \n \r \f \" \\ and \u00xx (lowercase hex) for the remaining
// C0 controls are produced; every code point from U+0020 up, non-ASCII
// included, passes through in its native encoding.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r <= 0x1f {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
