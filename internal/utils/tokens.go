package utils

import "unicode/utf8"

// CountTokens estimates the number of tokens in the given text.
// Heuristic: 1 token ~= 4 characters, at least 1 for any non-empty text.
func CountTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	tokens := utf8.RuneCountInString(text) / 4
	if tokens == 0 {
		return 1
	}
	return tokens
}

// TruncateRunes returns at most n leading runes of s and whether it cut anything.
func TruncateRunes(s string, n int) (string, bool) {
	if n <= 0 {
		return "", s != ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:n]), true
}
