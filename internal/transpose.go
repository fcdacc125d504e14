package internal

import "strings"

// column is one key position during a transposition. Its contents are the
// runes at text positions pos, pos+n, pos+2n, ...
type column struct {
	pos  int // original key position
	size int // number of runes the column holds
}

// layout derives the columns for key and a text of length runes, using the
// quotient/remainder rule: the first length%n columns by original position
// hold one extra rune.
func layout(key string, length int) ([]column, []int, error) {
	ranks, err := Ranks(key)
	if err != nil {
		return nil, nil, err
	}
	n := len(ranks)
	q, r := length/n, length%n

	cols := make([]column, n)
	for p := range cols {
		size := q
		if p < r {
			size++
		}
		cols[p] = column{pos: p, size: size}
	}
	return cols, ReadOrder(ranks), nil
}

// Transpose performs one forward columnar transposition of the normalized
// text under the normalized key. Lengths are counted in runes.
//
// Behavior:
//  1. Rune k of text belongs to column k mod n.
//  2. Columns are read out in ascending (rank, position) order.
//  3. The column contents are concatenated.
func Transpose(key, text string) (string, error) {
	src := []rune(text)
	cols, order, err := layout(key, len(src))
	if err != nil {
		return "", err
	}
	n := len(cols)

	var b strings.Builder
	b.Grow(len(text))
	for _, p := range order {
		for k := cols[p].pos; k < len(src); k += n {
			b.WriteRune(src[k])
		}
	}
	return b.String(), nil
}

// ReverseTranspose undoes Transpose for the same key.
//
// Behavior:
//  1. Column sizes follow from the ciphertext length (see layout).
//  2. Each column's chunk starts after the chunks of every column read
//     before it (its slot in the read order).
//  3. Rune j of column p is placed at text position p + j*n.
//
// Returns an error wrapping ErrLengthMismatch if the chunks do not cover the
// ciphertext exactly.
func ReverseTranspose(key, text string) (string, error) {
	src := []rune(text)
	cols, order, err := layout(key, len(src))
	if err != nil {
		return "", err
	}
	n := len(cols)

	// start[s] is the ciphertext offset of the chunk read in slot s.
	start := make([]int, n+1)
	for s, p := range order {
		start[s+1] = start[s] + cols[p].size
	}
	// Sizes are derived from len(src), so this only guards layout itself.
	if start[n] != len(src) {
		return "", &MismatchError{Columns: n, Length: len(src), Consumed: start[n]}
	}

	slot := InvertOrder(order)
	out := make([]rune, len(src))
	for _, c := range cols {
		chunk := src[start[slot[c.pos]]:start[slot[c.pos]+1]]
		for j, r := range chunk {
			out[c.pos+j*n] = r
		}
	}
	return string(out), nil
}
