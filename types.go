package inplace

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// CompareFunc is a function type for comparing two items of type E.
// It must implement a strict weak ordering: reflexivity, antisymmetry, and transitivity.
// Returns a negative integer if a should be ordered before b, zero if they are equal,
// and a positive integer if a should be ordered after b.
// The function must be consistent for the duration of any single call into this package;
// state needed for indirect comparisons should be captured by the closure.
type CompareFunc[E any] func(a, b E) int

// SearchFunc is a function type comparing a candidate element with an implicit target.
// It returns a negative integer if the candidate is less than the target, zero if it
// matches, and a positive integer if it is greater. Unlike CompareFunc it closes over
// the target instead of comparing two slots of the array.
type SearchFunc[E any] func(candidate E) int

// Rand is the source of randomness consumed by Shuffle and Sample.
// *rand.Rand from math/rand/v2 satisfies it. IntN must return a uniform value in [0, n).
type Rand interface {
	IntN(n int) int
}

// Ascending returns the natural ordering of an ordered type.
func Ascending[E constraints.Ordered]() CompareFunc[E] {
	return cmp.Compare[E]
}

// Descending returns the reverse of the natural ordering of an ordered type.
func Descending[E constraints.Ordered]() CompareFunc[E] {
	return func(a, b E) int {
		return cmp.Compare(b, a)
	}
}

// ReverseOrder returns a CompareFunc that orders items opposite to compareFunc.
func ReverseOrder[E any](compareFunc CompareFunc[E]) CompareFunc[E] {
	return func(a, b E) int {
		return compareFunc(b, a)
	}
}

// By returns a CompareFunc ordering items by the key extracted with key.
// The key function may close over any state it needs, for example a lookup
// table when sorting indices into another slice.
func By[E any, K constraints.Ordered](key func(E) K) CompareFunc[E] {
	return func(a, b E) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SearchFor returns a SearchFunc matching target under compareFunc.
func SearchFor[E any](target E, compareFunc CompareFunc[E]) SearchFunc[E] {
	return func(candidate E) int {
		return compareFunc(candidate, target)
	}
}

// SearchOrdered returns a SearchFunc matching target under the natural ordering.
func SearchOrdered[E constraints.Ordered](target E) SearchFunc[E] {
	return func(candidate E) int {
		return cmp.Compare(candidate, target)
	}
}
