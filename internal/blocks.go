package internal

import (
	"strings"
	"unicode"
)

// BlockSize is the default number of ciphertext runes per printed block.
const BlockSize = 5

// Group splits s into blocks of BlockSize runes separated by single spaces.
func Group(s string) string {
	return GroupN(s, BlockSize)
}

// GroupN splits s into blocks of width runes separated by single spaces.
// The final block may be shorter; there is no trailing space.
// A width <= 0 disables grouping and returns s unchanged.
func GroupN(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width)
	i := 0
	for _, r := range s {
		if i > 0 && i%width == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// Ungroup removes all Unicode whitespace from s, undoing GroupN for any width.
func Ungroup(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
