// Package queue provides a generic priority queue based on the in-place binary heap
package queue

import (
	"github.com/lanrat/inplace"
)

// PriorityQueue is a min-first priority queue stored as an implicit binary heap in a slice.
// The zero value is not usable; create one with NewPriorityQueue.
type PriorityQueue[E any] struct {
	items []E
	// heap order; reversed so the least item sits at the root of the max-heap
	heapCmp inplace.CompareFunc[E]
}

// NewPriorityQueue creates a new heap based PriorityQueue using compareFunc as the comparison function.
// Items are popped in ascending order of compareFunc.
func NewPriorityQueue[E any](compareFunc inplace.CompareFunc[E]) *PriorityQueue[E] {
	return &PriorityQueue[E]{
		heapCmp: inplace.ReverseOrder(compareFunc),
	}
}

// Len returns the number of items in the queue
func (pq *PriorityQueue[E]) Len() int {
	return len(pq.items)
}

// Push adds x to the queue
func (pq *PriorityQueue[E]) Push(x E) {
	pq.items = append(pq.items, x)
	inplace.HeapPushUp(pq.items, pq.heapCmp)
}

// Pop removes and returns the next item in the queue. It panics if the queue is empty.
func (pq *PriorityQueue[E]) Pop() E {
	top := pq.items[0]
	last := len(pq.items) - 1
	pq.items[0] = pq.items[last]
	var zero E
	pq.items[last] = zero // for safety
	pq.items = pq.items[:last]
	inplace.HeapPushDown(pq.items, pq.heapCmp)
	return top
}

// Peek returns the next item in the queue without removing it. It panics if the queue is empty.
func (pq *PriorityQueue[E]) Peek() E {
	return pq.items[0]
}

// PeekUpdate reorders the backing heap after the item returned by Peek was modified,
// which is only possible when E is a pointer or contains one.
func (pq *PriorityQueue[E]) PeekUpdate() {
	inplace.HeapPushDown(pq.items, pq.heapCmp)
}

// ReplaceTop replaces the next item in the queue with x and returns the old one.
// It is cheaper than a Pop followed by a Push. It panics if the queue is empty.
func (pq *PriorityQueue[E]) ReplaceTop(x E) E {
	top := pq.items[0]
	pq.items[0] = x
	inplace.HeapPushDown(pq.items, pq.heapCmp)
	return top
}
