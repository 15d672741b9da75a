package natsort

import (
	"path/filepath"
	"slices"
	"strings"
)

// Token is one maximal run of a tokenized string: either a digit run or a
// literal text segment.
type Token struct {
	Digits bool
	Text   string
}

// Split tokenizes s into alternating text and digit-run tokens. Tokens at
// even indices are text and tokens at odd indices are digit runs; empty
// text tokens pad the boundaries so the alternation always holds. The empty
// string tokenizes to a single empty text token.
func Split(s string) []Token {
	var tokens []Token
	start := 0
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			i++
			continue
		}
		tokens = append(tokens, Token{Text: s[start:i]})
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		tokens = append(tokens, Token{Digits: true, Text: s[i:j]})
		start = j
		i = j
	}
	return append(tokens, Token{Text: s[start:]})
}

// Compare orders a and b by natural-sort rules and returns -1, 0 or +1.
// Tokens are compared pairwise; when one key is a prefix of the other the
// shorter key orders first. "file007" and "file7" compare equal.
func Compare(a, b string) int {
	ta, tb := Split(a), Split(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if c := compareTokens(ta[i], tb[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort orders items in place. The sort is stable, so elements with equal
// keys keep their input order.
func Sort(items []string) {
	slices.SortStableFunc(items, Compare)
}

// SortPaths orders paths in place, comparing forward-slash forms so the
// Windows and POSIX spellings of a path order identically.
func SortPaths(paths []string) {
	slices.SortStableFunc(paths, func(a, b string) int {
		return Compare(filepath.ToSlash(a), filepath.ToSlash(b))
	})
}

func compareTokens(a, b Token) int {
	switch {
	case a.Digits && b.Digits:
		return compareDigits(a.Text, b.Text)
	case a.Digits != b.Digits:
		// Digit runs order before text when token kinds differ.
		if a.Digits {
			return -1
		}
		return 1
	default:
		return strings.Compare(a.Text, b.Text)
	}
}

// compareDigits compares two digit runs by numeric value: leading zeros are
// stripped, a longer remainder is the larger value, and equal-length
// remainders compare lexicographically.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
