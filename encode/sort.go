package encode

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// sortKey is a rendered object key together with its case folded form.
type sortKey struct {
	text   string
	folded string
}

func newSortKey(fold cases.Caser, text string) sortKey {
	return sortKey{text: text, folded: fold.String(text)}
}

// compareKeys orders keys naturally and case insensitively: runs of digits
// compare by numeric value and letters compare after case folding. Keys
// which are equal under that order compare by their exact bytes.
func compareKeys(a, b sortKey) int {
	if c := naturalCompare(a.folded, b.folded); c != 0 {
		return c
	}
	return strings.Compare(a.text, b.text)
}

func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			da, ra := digitRun(a)
			db, rb := digitRun(b)
			if c := compareDigits(da, db); c != 0 {
				return c
			}
			a, b = ra, rb
			continue
		}
		x, nx := utf8.DecodeRuneInString(a)
		y, ny := utf8.DecodeRuneInString(b)
		if x != y {
			if x < y {
				return -1
			}
			return 1
		}
		a, b = a[nx:], b[ny:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func digitRun(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// compareDigits compares two decimal digit strings by value, without
// limit on their length.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
