package core

import "strings"

// tokenDelimiters are the characters that separate tokens: space, tab,
// carriage return, newline and bell. Runs of delimiters collapse to a
// single boundary.
const tokenDelimiters = " \t\r\n\a"

// Tokenize splits a raw command line into whitespace-delimited tokens.
// A line consisting only of delimiters yields an empty sequence. There
// is no quoting or escaping; the split is purely by delimiter runs.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r)
	})
}
