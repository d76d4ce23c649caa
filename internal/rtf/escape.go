package rtf

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// EscapeText encodes arbitrary Unicode text for use inside an RTF body.
//
// RTF predates Unicode, so text is processed one UTF-16 code unit at a
// time: characters outside the BMP split into two surrogate escapes,
// which is what RTF readers expect. Rules, in order:
//
//   - backslash and braces are escaped with a leading backslash
//   - newlines become explicit \line breaks
//   - code units <= 127 pass through literally
//   - everything else becomes \uN? where N is the code unit as a
//     signed 16-bit value (units above 32767 are biased by -65536) and
//     "?" is the fallback glyph for readers without Unicode support
func EscapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, u := range utf16.Encode([]rune(s)) {
		switch {
		case u == '\\':
			b.WriteString(`\\`)
		case u == '{':
			b.WriteString(`\{`)
		case u == '}':
			b.WriteString(`\}`)
		case u == '\n':
			b.WriteString(`\line `)
		case u <= 127:
			b.WriteByte(byte(u))
		default:
			n := int(u)
			if n > 32767 {
				n -= 65536
			}
			b.WriteString(`\u`)
			b.WriteString(strconv.Itoa(n))
			b.WriteByte('?')
		}
	}

	return b.String()
}

// EscapeFieldArg escapes a string for embedding inside a quoted field
// instruction, e.g. the URL in {\fldinst{HYPERLINK "..."}}.
//
// Field instructions are a different sub-syntax from body text: only
// backslash and double quote are reserved. Backslash must be escaped
// first so the backslashes introduced for quotes are not re-escaped.
func EscapeFieldArg(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
