package inplace

// The heap functions maintain an implicit binary max-heap over a slice under
// compareFunc: the parent of i is (i-1)/2 and its children are 2i+1 and 2i+2.
// The largest element is at index 0.

// HeapPushUp restores heap order after an element has been appended:
// h[:len(h)-1] must already be a heap, and the last element is sifted towards
// the root. Parents are shifted down into the hole rather than swapped.
func HeapPushUp[E any](h []E, compareFunc CompareFunc[E]) {
	n := len(h)
	if n <= 1 {
		return
	}
	tmp := h[n-1]
	child := n - 1
	for child > 0 {
		parent := (child - 1) / 2
		if compareFunc(h[parent], tmp) >= 0 {
			break
		}
		h[child] = h[parent]
		child = parent
	}
	h[child] = tmp
}

// HeapPushDown restores heap order after the root has been replaced:
// h[1:] must already be heap-ordered, and h[0] is sifted towards the leaves
// by repeatedly moving the larger child up into the hole.
func HeapPushDown[E any](h []E, compareFunc CompareFunc[E]) {
	n := len(h)
	if n <= 1 {
		return
	}
	tmp := h[0]
	parent := 0
	for {
		child := 2*parent + 1
		if child >= n || child < 0 { // child < 0 on overflow
			break
		}
		// biggest child
		if child+1 < n && compareFunc(h[child], h[child+1]) < 0 {
			child++
		}
		if compareFunc(tmp, h[child]) >= 0 {
			break
		}
		h[parent] = h[child]
		parent = child
	}
	h[parent] = tmp
}

// HeapMake arranges h into a max-heap by pushing up each element in turn.
func HeapMake[E any](h []E, compareFunc CompareFunc[E]) {
	for n := 2; n <= len(h); n++ {
		HeapPushUp(h[:n], compareFunc)
	}
}

// HeapSort sorts s in ascending order. It builds a max-heap and then repeatedly
// swaps the root with the last live element and pushes the new root down,
// shrinking the live horizon by one each time.
// HeapSort is NOT stable.
func HeapSort[E any](s []E, compareFunc CompareFunc[E]) {
	HeapMake(s, compareFunc)
	for n := len(s) - 1; n > 0; n-- {
		s[0], s[n] = s[n], s[0]
		HeapPushDown(s[:n], compareFunc)
	}
}

// IsHeap reports whether h satisfies the max-heap property under compareFunc.
func IsHeap[E any](h []E, compareFunc CompareFunc[E]) bool {
	for i := 1; i < len(h); i++ {
		if compareFunc(h[(i-1)/2], h[i]) < 0 {
			return false
		}
	}
	return true
}
