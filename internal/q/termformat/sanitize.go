// Package termformat prepares untrusted text for display in a terminal.
package termformat

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Sanitize makes user text s safe to print to a terminal:
//   - If tabWidth > 0, \t becomes tabWidth spaces. Otherwise, \t is left as-is.
//   - \n is left as-is.
//   - Every other ASCII control character (<= 0x1F, and 0x7F) becomes "\xXX". \r is escaped too, since it would move the cursor to column 0.
//   - Invalid UTF-8 becomes U+FFFD.
//
// Sanitize returns s itself when nothing needs changing.
func Sanitize(s string, tabWidth int) string {
	if clean(s, tabWidth) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
			i++
			continue
		}
		i += size

		switch {
		case r == '\t' && tabWidth > 0:
			b.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\t' || r == '\n':
			b.WriteRune(r)
		case isControl(r):
			b.WriteByte('\\')
			b.WriteByte('x')
			b.WriteByte(hexDigits[byte(r)>>4])
			b.WriteByte(hexDigits[byte(r)&0x0F])
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// clean reports whether Sanitize would leave s unchanged. Bytes of multi-byte runes are all >= 0x80, so a byte scan finds every control character.
func clean(s string, tabWidth int) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\n':
		case c == '\t':
			if tabWidth > 0 {
				return false
			}
		case isControl(rune(c)):
			return false
		}
	}
	return true
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}
