package inplace

// BinarySearch searches s, which must be sorted consistently with search, for an
// element for which search returns zero. It returns the element's index and true,
// or -1 and false if there is none. search is evaluated O(log n) times.
func BinarySearch[E any](s []E, search SearchFunc[E]) (int, bool) {
	l, r := 0, len(s) // live bracket s[l:r]
	for l < r {
		mid := int(uint(l+r) >> 1) // avoid overflow when computing mid
		c := search(s[mid])
		switch {
		case c == 0:
			return mid, true
		case c > 0:
			r = mid
		default:
			l = mid + 1
		}
	}
	return -1, false
}

// LinearSearch returns the index of the first element of s for which search
// returns zero, or -1 and false if there is none. s need not be sorted.
func LinearSearch[E any](s []E, search SearchFunc[E]) (int, bool) {
	for i := range s {
		if search(s[i]) == 0 {
			return i, true
		}
	}
	return -1, false
}
