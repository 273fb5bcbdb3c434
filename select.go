package inplace

import "fmt"

// Select rearranges s so that s[k] holds the k-th smallest element (counting from zero)
// under compareFunc, every element of s[:k] compares <= s[k] and every element of
// s[k+1:] compares >= s[k]. It returns s[k].
//
// Select narrows a window around k with median-of-3 quickselect partitions.
// k must be in [0, len(s)); anything else panics.
func Select[E any](s []E, k int, compareFunc CompareFunc[E]) E {
	n := len(s)
	if k < 0 || k >= n {
		panic(fmt.Sprintf("inplace: Select index %d out of range [0:%d]", k, n))
	}

	l, r := 0, n-1
	for l < r {
		p := l + partitionMedian3(s[l:r+1], compareFunc)
		switch {
		case p > k:
			r = p - 1
		case p < k:
			l = p + 1
		default:
			return s[k]
		}
	}
	return s[k]
}

// Median returns the median of s under compareFunc and true, or the zero value and
// false if s is empty. For an even number of elements the median is mean(lo, hi) of
// the two middle order statistics; a nil mean returns the lower one.
// s is reordered as by Select.
func Median[E any](s []E, compareFunc CompareFunc[E], mean func(lo, hi E) E) (E, bool) {
	n := len(s)
	if n == 0 {
		var zero E
		return zero, false
	}
	hi := Select(s, n/2, compareFunc)
	if n%2 == 1 {
		return hi, true
	}
	// s[:n/2] now holds the lower half, the lower middle is its maximum
	lo := s[0]
	for _, v := range s[1 : n/2] {
		if compareFunc(v, lo) > 0 {
			lo = v
		}
	}
	if mean == nil {
		return lo, true
	}
	return mean(lo, hi), true
}
