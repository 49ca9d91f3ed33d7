package names

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var hyphenSpacing = regexp.MustCompile(`\s*-\s*`)

// Canonicalize reduces a raw person name to its canonical form: periods
// become token boundaries, whitespace runs collapse, spacing around hyphens
// is dropped, and every token is title-cased. "S.S. Rajamouli",
// "s s rajamouli", and "S  S  RAJAMOULI" all canonicalize to
// "S S Rajamouli". The function is total and idempotent; whitespace-only
// input yields "".
func Canonicalize(raw string) string {
	value := strings.ReplaceAll(raw, ".", " ")
	value = hyphenSpacing.ReplaceAllString(value, "-")
	tokens := strings.Fields(value)
	for i, token := range tokens {
		tokens[i] = titleToken(token)
	}
	return strings.Join(tokens, " ")
}

func titleToken(token string) string {
	first, size := utf8.DecodeRuneInString(token)
	if first == utf8.RuneError && size <= 1 {
		return token
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(token[size:])
}
