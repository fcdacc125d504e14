package internal

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// asciiPunct is the fixed ASCII punctuation set removed during normalization.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalize prepares keys and texts for the cipher:
//   - drops Unicode whitespace
//   - drops ASCII punctuation (non-ASCII punctuation is kept)
//   - applies the full Unicode uppercase mapping, which may expand a rune
//     into several (ß → SS)
//
// Normalize is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || isASCIIPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	// Caser carries state; a fresh one per call keeps Normalize safe for concurrent use.
	return cases.Upper(language.Und).String(b.String())
}

func isASCIIPunct(r rune) bool {
	return r < 0x80 && strings.ContainsRune(asciiPunct, r)
}
