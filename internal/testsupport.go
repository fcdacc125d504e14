package internal

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// selfTestAlphabet mixes plain letters with characters whose uppercase
// mapping expands (ß, ŉ, ﬀ) and punctuation/whitespace that normalization drops.
var selfTestAlphabet = []rune("abcdefghijklmnopqrstuvwxyzäöüßŉﬀ ,.!-")

// selfTestKeys are candidate keys; duplicates and sorted keys are included on purpose.
var selfTestKeys = []string{
	"Apfel", "Kirsche", "Hans", "Dampf", "Lorem", "ipsum",
	"Mississippi", "ABC", "Z", "Straße", "Zebra", "Banane",
}

// SelfTestCase is one randomized round-trip trial.
type SelfTestCase struct {
	Key1, Key2 string
	Text       string
	Cipher     string
	Err        error
}

// Passed reports whether the trial round-tripped.
func (c SelfTestCase) Passed() bool { return c.Err == nil }

// RunSelfTest generates sets randomized trials with texts up to maxLen
// runes, prints each trial (keys, text, ciphertext, result) to w and
// returns the number of failed trials.
//
// Parameters:
//   - w:      destination for the report
//   - r:      randomness source (seeded by the caller for reproducibility)
//   - sets:   number of trials
//   - maxLen: maximum plaintext length in runes (0 allowed: empty texts)
func RunSelfTest(w io.Writer, r *rand.Rand, sets, maxLen int) int {
	failed := 0
	for i := 0; i < sets; i++ {
		c := runSelfTestCase(r, maxLen)

		fmt.Fprintln(w, Style(fmt.Sprintf("Set %d:", i+1), Bold, Purple))
		fmt.Fprintf(w, "  Keys:   %s / %s\n", c.Key1, c.Key2)
		fmt.Fprintf(w, "  Text:   %q\n", c.Text)
		fmt.Fprintf(w, "  Cipher: %s\n", c.Cipher)

		var label string
		if c.Passed() {
			label = Style("  Result: PASSED", Bold, Green)
		} else {
			label = Style(fmt.Sprintf("  Result: FAILED (%v)", c.Err), Bold, Red)
			failed++
		}
		fmt.Fprintln(w, label)
	}

	if sets > 1 {
		fmt.Fprintf(w, "%s %d, %s %d\n",
			Style("Total sets:", Bold), sets,
			Style("Failed:", Bold), failed)
	}
	return failed
}

func runSelfTestCase(r *rand.Rand, maxLen int) SelfTestCase {
	c := SelfTestCase{
		Key1: selfTestKeys[r.Intn(len(selfTestKeys))],
		Key2: selfTestKeys[r.Intn(len(selfTestKeys))],
	}
	n := 0
	if maxLen > 0 {
		n = r.Intn(maxLen + 1)
	}
	var b strings.Builder
	for j := 0; j < n; j++ {
		b.WriteRune(selfTestAlphabet[r.Intn(len(selfTestAlphabet))])
	}
	c.Text = b.String()
	c.Cipher, c.Err = EncodeVerified(DefaultOptions(), c.Key1, c.Key2, c.Text)
	return c
}
