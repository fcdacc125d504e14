package internal

import (
	"fmt"
)

// EncodeVerified encodes text and then immediately verifies a full round-trip
// by decoding the ciphertext with the same keys. If verification fails for
// any reason, an error is returned and no ciphertext is produced.
//
// Parameters:
//   - opts:  block size and logger, as for EncodeWith
//   - key1:  first transposition key
//   - key2:  second transposition key
//   - text:  plaintext; compared after normalization
//
// Returns:
//   - the grouped ciphertext
//   - an error wrapping ErrRoundTrip on mismatch, or the encode/decode error
func EncodeVerified(opts Options, key1, key2, text string) (string, error) {
	cipher, err := EncodeWith(opts, key1, key2, text)
	if err != nil {
		return "", err
	}
	if err := checkRoundTrip(opts, key1, key2, text, cipher); err != nil {
		return "", err
	}
	return cipher, nil
}

// VerifyRoundTrip checks that encoding and then decoding text yields the
// normalized text. It returns nil on success.
//
// This is equivalent to calling EncodeVerified and discarding the ciphertext.
func VerifyRoundTrip(key1, key2, text string) error {
	_, err := EncodeVerified(DefaultOptions(), key1, key2, text)
	return err
}

func checkRoundTrip(opts Options, key1, key2, text, cipher string) error {
	decoded, err := DecodeWith(opts, key1, key2, cipher)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	want := []rune(Normalize(text))
	have := []rune(decoded)
	if len(have) != len(want) {
		return fmt.Errorf("%w: decoded length %d != %d", ErrRoundTrip, len(have), len(want))
	}
	for i := range want {
		if have[i] != want[i] {
			return fmt.Errorf("%w at position %d", ErrRoundTrip, i)
		}
	}
	return nil
}
