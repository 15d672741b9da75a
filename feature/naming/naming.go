package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperRun   = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	upperAfter = regexp.MustCompile(`([a-z0-9])([A-Z])`)

	simpleNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// maxExtLength bounds how long a dot-suffix may be before it stops reading
// as a file extension; the dot counts.
const maxExtLength = 7

// PascalToSnake converts PascalCase to snake_case. Acronym runs collapse
// into one word: "HTTPResponse" becomes "http_response".
func PascalToSnake(s string) string {
	s = upperRun.ReplaceAllString(s, "${1}_${2}")
	s = upperAfter.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}

// CamelToSnake converts camelCase to snake_case with the same boundary
// rules as [PascalToSnake].
func CamelToSnake(s string) string {
	return PascalToSnake(s)
}

// PascalToCamel lowers the first letter: "PascalCase" becomes "pascalCase".
func PascalToCamel(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// CamelToPascal raises the first letter: "camelCase" becomes "CamelCase".
func CamelToPascal(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// SnakeToPascal converts snake_case to PascalCase. Consecutive and leading
// underscores contribute nothing: "_private__var" becomes "PrivateVar".
func SnakeToPascal(s string) string {
	var b strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// SnakeToCamel converts snake_case to camelCase: the first word is
// lowered, the rest are capitalized.
func SnakeToCamel(s string) string {
	var b strings.Builder
	first := true
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(word))
			first = false
			continue
		}
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// IsPathLike reports whether value reads like a file or directory path:
// any separator character (which covers drive roots, UNC prefixes and
// explicit relative forms), or a filename carrying a short extension.
func IsPathLike(value string) bool {
	if value == "" {
		return false
	}
	if strings.ContainsAny(value, `\/`) {
		return true
	}
	ext := extOf(value)
	return ext != "" && len(ext) <= maxExtLength
}

// NoSpecialChars reports whether s is a non-empty run of ASCII letters,
// digits and underscores. Whitespace, punctuation and non-ASCII letters
// all fail.
func NoSpecialChars(s string) bool {
	return simpleNamePattern.MatchString(s)
}

// capitalize upper-cases the first letter of a word and lowers the rest.
// Casers carry state, so each call builds its own.
func capitalize(word string) string {
	return cases.Title(language.English).String(word)
}

// extOf returns the dot-suffix of a separator-free name. Dotfiles like
// ".gitignore" have no extension.
func extOf(value string) string {
	dot := strings.LastIndexByte(value, '.')
	if dot < 0 || strings.Trim(value[:dot], ".") == "" {
		return ""
	}
	return value[dot:]
}
