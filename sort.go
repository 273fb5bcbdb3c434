package inplace

import "math/bits"

// ranges shorter than this are sorted with insertion sort
const insertionSortCutoff = 6

// Sort sorts s in ascending order as determined by compareFunc.
// It is a quicksort using the median of the first, middle and last elements as pivot,
// switching to insertion sort for short ranges. The smaller side of each partition is
// recursed into and the larger side iterated, and a depth budget of 2*log2(n) falls
// back to heapsort, so stack use is O(log n) and the worst case is O(n log n).
//
// Sort is NOT stable: equal elements may be reordered.
func Sort[E any](s []E, compareFunc CompareFunc[E]) {
	quickSort(s, compareFunc, depthBudget(len(s)))
}

func depthBudget(n int) int {
	return 2 * bits.Len(uint(n))
}

func quickSort[E any](s []E, compareFunc CompareFunc[E], depth int) {
	for len(s) >= insertionSortCutoff {
		if depth == 0 {
			HeapSort(s, compareFunc)
			return
		}
		depth--

		p := partitionMedian3(s, compareFunc)
		if p < len(s)-1-p {
			quickSort(s[:p], compareFunc, depth)
			s = s[p+1:]
		} else {
			quickSort(s[p+1:], compareFunc, depth)
			s = s[:p]
		}
	}
	InsertionSort(s, compareFunc)
}

// partitionMedian3 moves the median of the first, middle and last elements to the
// front of s and partitions around it, returning the pivot's final index.
func partitionMedian3[E any](s []E, compareFunc CompareFunc[E]) int {
	n := len(s)
	m := Median3(s, 0, n/2, n-1, compareFunc)
	s[0], s[m] = s[m], s[0]
	return Partition(s, compareFunc)
}

// Partition rearranges s around the pivot s[0] and returns the pivot's final index p:
// every element of s[:p] compares <= the pivot and every element of s[p+1:] compares >= it.
// The pivot is held aside and two cursors move inward, each copying an out-of-place
// element across the hole left by the other. Partition returns 0 when len(s) <= 1.
func Partition[E any](s []E, compareFunc CompareFunc[E]) int {
	if len(s) <= 1 {
		return 0
	}
	pivot := s[0]
	l, r := 0, len(s)-1
	// hole at l
	for l < r {
		for ; l < r; r-- {
			if compareFunc(s[r], pivot) < 0 {
				s[l] = s[r]
				l++ // hole now at r
				break
			}
		}
		for ; l < r; l++ {
			if compareFunc(s[l], pivot) > 0 {
				s[r] = s[l]
				r-- // hole now at l
				break
			}
		}
	}
	// l == r
	s[l] = pivot
	return l
}

// InsertionSort sorts s in ascending order using insertion sort.
func InsertionSort[E any](s []E, compareFunc CompareFunc[E]) {
	InsertSortedTail(s, 0, compareFunc)
}

// InsertSortedTail sorts s given that s[:sorted] is already sorted, by inserting each
// element of s[sorted:] into the sorted prefix, moving it towards the front.
func InsertSortedTail[E any](s []E, sorted int, compareFunc CompareFunc[E]) {
	checkIndex("InsertSortedTail", sorted, len(s))
	for i := max(sorted, 1); i < len(s); i++ {
		for j := i; j > 0 && compareFunc(s[j-1], s[j]) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// InsertSortedHead sorts s given that s[unsorted:] is already sorted, by inserting each
// element of s[:unsorted], last first, into the sorted suffix, moving it towards the end.
func InsertSortedHead[E any](s []E, unsorted int, compareFunc CompareFunc[E]) {
	checkIndex("InsertSortedHead", unsorted, len(s))
	for i := unsorted; i > 0; i-- {
		for j := i; j < len(s) && compareFunc(s[j-1], s[j]) > 0; j++ {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// IsSorted reports whether s is sorted in ascending order as determined by compareFunc.
func IsSorted[E any](s []E, compareFunc CompareFunc[E]) bool {
	for i := 1; i < len(s); i++ {
		if compareFunc(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}

// Median3 returns whichever of i, j and k indexes the median of s[i], s[j] and s[k],
// using at most three comparisons. The result is an index into s, not a copy.
func Median3[E any](s []E, i, j, k int, compareFunc CompareFunc[E]) int {
	if compareFunc(s[i], s[j]) > 0 {
		i, j = j, i
	}
	if compareFunc(s[j], s[k]) > 0 {
		j, k = k, j
		if compareFunc(s[i], s[j]) > 0 {
			i, j = j, i
		}
	}
	return j
}

// Median5 returns whichever of the five indexes addresses the median of the five
// elements, using six comparisons. The result is an index into s, not a copy.
func Median5[E any](s []E, i0, i1, i2, i3, i4 int, compareFunc CompareFunc[E]) int {
	less := func(a, b int) bool { return compareFunc(s[a], s[b]) < 0 }

	// make s[i0] <= s[i1] and s[i2] <= s[i3]
	if less(i1, i0) {
		i0, i1 = i1, i0
	}
	if less(i3, i2) {
		i2, i3 = i3, i2
	}

	// the lesser of the two pair minimums cannot be the median;
	// replace it with i4 and restore the pair order
	if less(i0, i2) {
		i0 = i4
		if less(i1, i0) {
			i0, i1 = i1, i0
		}
	} else {
		i2 = i4
		if less(i3, i2) {
			i2, i3 = i3, i2
		}
	}

	if less(i0, i2) {
		if less(i1, i2) {
			return i1
		}
		return i2
	}
	if less(i3, i0) {
		return i3
	}
	return i0
}
