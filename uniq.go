package inplace

// Uniq removes consecutive duplicate elements of s in place and returns the
// shortened slice. Elements are duplicates if compareFunc reports zero, so a sorted
// slice is reduced to its distinct values. The first occurrence of each run is kept,
// and the vacated tail of s is zeroed so it holds no stale references.
func Uniq[E any](s []E, compareFunc CompareFunc[E]) []E {
	if len(s) <= 1 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if compareFunc(s[r], s[w-1]) != 0 {
			s[w] = s[r]
			w++
		}
	}
	clear(s[w:])
	return s[:w]
}
