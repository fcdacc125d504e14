package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned when a key normalizes to zero characters.
	ErrEmptyKey = errors.New("empty key")

	// ErrLengthMismatch is returned when an inverse transposition cannot
	// partition the ciphertext into the columns derived from the key.
	ErrLengthMismatch = errors.New("ciphertext length inconsistent with key")

	// ErrRoundTrip is returned by verified encoding when decoding the
	// ciphertext does not reproduce the normalized plaintext.
	ErrRoundTrip = errors.New("round-trip mismatch")
)

// KeyError reports which key was rejected.
type KeyError struct {
	Name string // "key1" or "key2"
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// MismatchError describes an inverse transposition whose column chunks did
// not cover the ciphertext exactly.
type MismatchError struct {
	Columns  int
	Length   int
	Consumed int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %d columns consumed %d of %d characters", ErrLengthMismatch, e.Columns, e.Consumed, e.Length)
}

func (e *MismatchError) Unwrap() error { return ErrLengthMismatch }
