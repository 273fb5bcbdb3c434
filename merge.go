package inplace

// MergeInsertionLimit is the largest run Merge will insert element by element into
// the other run. Insertion merging costs up to len(run)*len(s) comparisons, so above
// this Merge re-sorts the whole span instead.
const MergeInsertionLimit = 8

// Merge merges the two adjacent sorted runs s[:mid] and s[mid:] so that s is sorted.
// It does nothing if the runs are already in order, rotates if every element of the
// second run belongs before the first, inserts the smaller run into the larger one
// when it has at most MergeInsertionLimit elements, and otherwise falls back to Sort.
// No auxiliary buffer is used, so the result is NOT stable.
func Merge[E any](s []E, mid int, compareFunc CompareFunc[E]) {
	checkIndex("Merge", mid, len(s))
	n := len(s)
	switch {
	case mid == 0 || mid == n:
	case compareFunc(s[mid-1], s[mid]) <= 0:
		// already ordered end to end
	case compareFunc(s[0], s[n-1]) >= 0:
		// second run entirely precedes the first
		RotateLeft(s, mid)
	case n-mid <= mid && n-mid <= MergeInsertionLimit:
		insertionMergeTail(s, mid, compareFunc)
	case mid <= MergeInsertionLimit:
		insertionMergeHead(s, mid, compareFunc)
	default:
		Sort(s, compareFunc)
	}
}

// insertionMergeTail inserts the elements of s[mid:] into s[:mid] front to back.
// Once an element stays where it is, the rest of the second run is already in place.
func insertionMergeTail[E any](s []E, mid int, compareFunc CompareFunc[E]) {
	for i := mid; i < len(s); i++ {
		j := i
		for ; j > 0 && compareFunc(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
		if j == i {
			break
		}
	}
}

// insertionMergeHead inserts the elements of s[:mid] into s[mid:] back to front.
func insertionMergeHead[E any](s []E, mid int, compareFunc CompareFunc[E]) {
	for i := mid; i > 0; i-- {
		j := i
		for ; j < len(s) && compareFunc(s[j-1], s[j]) > 0; j++ {
			s[j-1], s[j] = s[j], s[j-1]
		}
		if j == i {
			break
		}
	}
}
