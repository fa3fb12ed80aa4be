package dynarray

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b hold the same number of live elements and
// every pair compares equal with ==. Spare capacity is ignored.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal for element types without ==, using eq per pair.
func EqualFunc[T any](a, b *Array[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders a and b lexicographically over their live elements:
// the result is -1, 0 or +1 like cmp.Compare. A sequence that is a proper
// prefix of the other compares less.
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// Less reports whether a orders strictly before b (see Compare).
func Less[T cmp.Ordered](a, b *Array[T]) bool {
	return Compare(a, b) < 0
}
