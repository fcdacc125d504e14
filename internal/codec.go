package internal

import (
	"log/slog"
	"unicode/utf8"
)

// Options tunes EncodeWith and DecodeWith.
type Options struct {
	// BlockSize is the ciphertext block width; <= 0 disables grouping.
	BlockSize int
	// Logger receives debug records (lengths only, never key or text content).
	// Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used by Encode and Decode.
func DefaultOptions() Options {
	return Options{BlockSize: BlockSize}
}

// Encode runs the double columnar transposition over text.
//
// Behavior:
//  1. Normalize key1, key2 and text.
//  2. Transpose the text under key1, then the result under key2.
//  3. Group the ciphertext into blocks of BlockSize runes.
//
// Returns a *KeyError wrapping ErrEmptyKey if either key normalizes to nothing.
func Encode(key1, key2, text string) (string, error) {
	return EncodeWith(DefaultOptions(), key1, key2, text)
}

// Decode reverses Encode. The result is the normalized plaintext: casing,
// whitespace and punctuation of the original are not recoverable.
//
// Behavior:
//  1. Ungroup and normalize the text, normalize key1 and key2.
//  2. Reverse the transposition under key2, then under key1.
func Decode(key1, key2, text string) (string, error) {
	return DecodeWith(DefaultOptions(), key1, key2, text)
}

// EncodeWith is Encode with explicit options.
func EncodeWith(opts Options, key1, key2, text string) (string, error) {
	k1, k2, err := prepareKeys(key1, key2)
	if err != nil {
		return "", err
	}
	plain := Normalize(text)
	opts.logger().Debug("encode",
		"key1_len", utf8.RuneCountInString(k1),
		"key2_len", utf8.RuneCountInString(k2),
		"text_len", utf8.RuneCountInString(plain))

	out, err := Transpose(k1, plain)
	if err != nil {
		return "", &KeyError{Name: "key1", Err: err}
	}
	out, err = Transpose(k2, out)
	if err != nil {
		return "", &KeyError{Name: "key2", Err: err}
	}
	return GroupN(out, opts.BlockSize), nil
}

// DecodeWith is Decode with explicit options. The block size plays no part
// in decoding since Ungroup removes the separators.
func DecodeWith(opts Options, key1, key2, text string) (string, error) {
	k1, k2, err := prepareKeys(key1, key2)
	if err != nil {
		return "", err
	}
	cipher := Normalize(Ungroup(text))
	opts.logger().Debug("decode",
		"key1_len", utf8.RuneCountInString(k1),
		"key2_len", utf8.RuneCountInString(k2),
		"text_len", utf8.RuneCountInString(cipher))

	out, err := ReverseTranspose(k2, cipher)
	if err != nil {
		return "", &KeyError{Name: "key2", Err: err}
	}
	out, err = ReverseTranspose(k1, out)
	if err != nil {
		return "", &KeyError{Name: "key1", Err: err}
	}
	return out, nil
}

// prepareKeys normalizes both keys and fails fast on an empty one.
func prepareKeys(key1, key2 string) (string, string, error) {
	k1 := Normalize(key1)
	if k1 == "" {
		return "", "", &KeyError{Name: "key1", Err: ErrEmptyKey}
	}
	k2 := Normalize(key2)
	if k2 == "" {
		return "", "", &KeyError{Name: "key2", Err: ErrEmptyKey}
	}
	return k1, k2, nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger
	}
	return o.Logger
}
