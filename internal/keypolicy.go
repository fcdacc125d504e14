package internal

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// KeyPolicy defines how keys are judged before use.
//   - MinLength is the minimum normalized key length (runes) that is not
//     reported as short.
//   - Strict turns advisories into an error (ErrWeakKey).
type KeyPolicy struct {
	MinLength int
	Strict    bool
}

// DefaultKeyPolicy returns the policy used by the CLI when nothing else is
// configured.
func DefaultKeyPolicy() KeyPolicy {
	return KeyPolicy{
		MinLength: 5,
		Strict:    false,
	}
}

// KeyAdvisory is a finding about one key (or the pair).
type KeyAdvisory struct {
	Key     string // "key1", "key2" or "keys"
	Message string
}

func (a KeyAdvisory) String() string {
	return a.Key + ": " + a.Message
}

// CheckKeys inspects both keys after normalization and reports weaknesses
// that make the transposition easy to undo by hand:
//   - a key shorter than policy.MinLength
//   - a key whose letters are already in sorted order (columns are read
//     left to right)
//   - identical keys
//
// Empty keys are not reported here; Encode and Decode reject them.
func CheckKeys(key1, key2 string, policy KeyPolicy) []KeyAdvisory {
	var out []KeyAdvisory
	k1, k2 := Normalize(key1), Normalize(key2)
	for _, k := range []struct{ name, key string }{{"key1", k1}, {"key2", k2}} {
		if k.key == "" {
			continue
		}
		if n := utf8.RuneCountInString(k.key); n < policy.MinLength {
			out = append(out, KeyAdvisory{k.name, fmt.Sprintf("short key: %d characters (recommend %d+)", n, policy.MinLength)})
		}
		ranks, _ := Ranks(k.key)
		if IsIdentity(ReadOrder(ranks)) {
			out = append(out, KeyAdvisory{k.name, "letters already in alphabetical order; column order is trivially guessable"})
		}
	}
	if k1 != "" && k1 == k2 {
		out = append(out, KeyAdvisory{"keys", "key1 and key2 are identical"})
	}
	return out
}

// EnforceKeys runs CheckKeys and, when policy.Strict is set, returns an error
// wrapping ErrWeakKey that lists every advisory.
func EnforceKeys(key1, key2 string, policy KeyPolicy) ([]KeyAdvisory, error) {
	adv := CheckKeys(key1, key2, policy)
	if !policy.Strict || len(adv) == 0 {
		return adv, nil
	}
	msgs := make([]string, len(adv))
	for i, a := range adv {
		msgs[i] = a.String()
	}
	return adv, fmt.Errorf("%w: %s", ErrWeakKey, strings.Join(msgs, "; "))
}

// ErrWeakKey is returned by EnforceKeys under a strict policy.
var ErrWeakKey = errors.New("weak key")
