package internal

import (
	"cmp"
	"slices"
)

// Ranks returns, for every rune of the normalized key, the index of that
// rune's first occurrence in the code-point sorted copy of the key.
// Repeated runes share a rank; ReadOrder breaks the tie by position.
//
// Example: "APFEL" sorts to "AEFLP" and yields [0 4 2 1 3].
func Ranks(key string) ([]int, error) {
	runes := []rune(key)
	if len(runes) == 0 {
		return nil, ErrEmptyKey
	}

	sorted := slices.Clone(runes)
	slices.Sort(sorted)

	first := make(map[rune]int, len(sorted))
	for i, r := range sorted {
		if _, ok := first[r]; !ok {
			first[r] = i
		}
	}

	ranks := make([]int, len(runes))
	for i, r := range runes {
		ranks[i] = first[r]
	}
	return ranks, nil
}

// ReadOrder returns the original column positions in the order their
// contents are concatenated: ascending by (rank, position).
func ReadOrder(ranks []int) []int {
	order := make([]int, len(ranks))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(ranks[a], ranks[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return order
}

// InvertOrder computes the inverse of a read order: for order[s] = p it
// returns slot with slot[p] = s, the read slot of column p.
func InvertOrder(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// IsIdentity reports whether the key's read order keeps columns in their
// original positions. The text is still transposed, but the column order
// is trivially guessable.
func IsIdentity(order []int) bool {
	for i, v := range order {
		if i != v {
			return false
		}
	}
	return true
}
