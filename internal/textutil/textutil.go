// Package textutil provides small rune-aware string helpers.
package textutil

import "strings"

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// FilterDigits returns the ASCII digits of s in order, dropping everything else.
func FilterDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Length returns the number of runes in s.
func Length(s string) int {
	return len([]rune(s))
}

// SubstringFrom returns s from rune index i to the end.
func SubstringFrom(s string, i int) string {
	runes := []rune(s)
	return string(runes[clamp(i, len(runes)):])
}

// SubstringTo returns the first i runes of s.
func SubstringTo(s string, i int) string {
	runes := []rune(s)
	return string(runes[:clamp(i, len(runes))])
}

// Substring returns the runes of s in [from, to).
// Indices are clamped to the bounds of s; an inverted range yields "".
func Substring(s string, from, to int) string {
	runes := []rune(s)
	from = clamp(from, len(runes))
	to = clamp(to, len(runes))
	if to <= from {
		return ""
	}
	return string(runes[from:to])
}

// InsertAt inserts sep before rune index i.
func InsertAt(s string, i int, sep string) string {
	return SubstringTo(s, i) + sep + SubstringFrom(s, i)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
