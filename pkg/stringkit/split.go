// Package stringkit provides string splitting helpers.
//
// The package is a leaf: it depends on the standard library only,
// but its pull functions plug into the iterx pipeline without adaptation.
package stringkit

import (
	"strings"
	"unicode"
)

// Chars splits the string into its characters, one string per rune.
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Runes returns a pull function over the characters of the string.
// Each call yields the next rune, until the string is exhausted.
func Runes(s string) func() (rune, bool) {
	rs := []rune(s)
	var index int
	return func() (rune, bool) {
		if len(rs) <= index {
			return 0, false
		}
		r := rs[index]
		index++
		return r, true
	}
}

// Lines splits the string at newlines.
// A trailing carriage return is trimmed from each line,
// so Windows style line endings behave the same as Unix ones.
func Lines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Words splits the string at unicode whitespace, dropping the empty parts.
func Words(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

// SplitAny splits the string at every rune of the cutset.
// Consecutive separators produce empty parts, matching strings.Split behaviour.
func SplitAny(s, cutset string) []string {
	if cutset == "" {
		return []string{s}
	}
	isSep := func(r rune) bool { return strings.ContainsRune(cutset, r) }
	var (
		out     []string
		current strings.Builder
	)
	for _, r := range s {
		if isSep(r) {
			out = append(out, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	return append(out, current.String())
}

// Reverse flips the character order of the string.
func Reverse(s string) string {
	rs := []rune(s)
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return string(rs)
}
