package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a double quoted JSON string.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends v as a double quoted JSON string to d.
//
// Quotes, backslashes and the short control escapes are escaped by name,
// other control characters as \u00XX. Invalid UTF-8 is replaced with U+FFFD
// so the result is always valid UTF-8.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// NeedsQuote reports whether a field name cannot appear bare in a coding
// path: it is empty, starts with a digit, or holds anything other than
// letters, digits and underscores.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return strings.IndexFunc(v, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0
}
