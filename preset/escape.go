package preset

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EscapeSelector escapes a class name for use in a CSS selector, following
// the CSSOM serialize-an-identifier algorithm
func EscapeSelector(s string) string {
	if s == "-" {
		return `\-`
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune(utf8.RuneError)
		case r <= 0x1f || r == 0x7f:
			fmt.Fprintf(&b, `\%x `, r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			fmt.Fprintf(&b, `\%x `, r)
		case r >= 0x80, r == '-', r == '_',
			r >= '0' && r <= '9',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
