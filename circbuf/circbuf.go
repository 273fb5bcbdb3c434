// Package circbuf implements a growable double-ended ring buffer whose capacity is
// always a power of two. Items can be pushed and popped at both ends, and the
// storage can be linearised in place so it can be handed out as a plain slice.
package circbuf

import (
	"fmt"

	"github.com/lanrat/inplace"
)

// minimum capacity allocated on first growth
const minCapacity = 8

// Buffer is a double-ended ring buffer. The zero value is an empty buffer ready to use.
type Buffer[E any] struct {
	buf   []E // len(buf) is the capacity, zero or a power of two
	start int // index in buf of the first item
	n     int // number of items
}

// New returns an empty Buffer with room for at least capacity items.
func New[E any](capacity int) *Buffer[E] {
	b := &Buffer[E]{}
	b.Reserve(capacity)
	return b
}

// Len returns the number of items in the buffer.
func (b *Buffer[E]) Len() int {
	return b.n
}

// Cap returns the number of items the buffer can hold without growing.
func (b *Buffer[E]) Cap() int {
	return len(b.buf)
}

// pos maps a logical index to a position in buf
func (b *Buffer[E]) pos(i int) int {
	return (b.start + i) & (len(b.buf) - 1)
}

func (b *Buffer[E]) checkIndex(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("circbuf: index %d out of range [0:%d]", i, b.n))
	}
}

// At returns the i-th item counting from the front.
func (b *Buffer[E]) At(i int) E {
	b.checkIndex(i)
	return b.buf[b.pos(i)]
}

// Set replaces the i-th item counting from the front.
func (b *Buffer[E]) Set(i int, v E) {
	b.checkIndex(i)
	b.buf[b.pos(i)] = v
}

// Reserve grows the buffer, if needed, so it can hold at least capacity items.
func (b *Buffer[E]) Reserve(capacity int) {
	if capacity > len(b.buf) {
		b.resize(int(inplace.RoundUpPow2(uint(capacity))))
	}
}

// resize copies the items into a new backing array of the given power of two size,
// starting at index 0.
func (b *Buffer[E]) resize(size int) {
	nb := make([]E, size)
	if b.n > 0 {
		if end := b.start + b.n; end <= len(b.buf) {
			copy(nb, b.buf[b.start:end])
		} else {
			k := copy(nb, b.buf[b.start:])
			copy(nb[k:], b.buf[:b.n-k])
		}
	}
	b.buf = nb
	b.start = 0
}

func (b *Buffer[E]) grow() {
	if b.n == len(b.buf) {
		b.resize(max(2*len(b.buf), minCapacity))
	}
}

// PushFront adds v to the front of the buffer.
func (b *Buffer[E]) PushFront(v E) {
	b.grow()
	b.start = (b.start - 1) & (len(b.buf) - 1)
	b.n++
	b.buf[b.start] = v
}

// PushBack adds v to the back of the buffer.
func (b *Buffer[E]) PushBack(v E) {
	b.grow()
	b.buf[b.pos(b.n)] = v
	b.n++
}

// PopFront removes and returns the item at the front of the buffer,
// or returns the zero value and false if the buffer is empty.
func (b *Buffer[E]) PopFront() (E, bool) {
	var zero E
	if b.n == 0 {
		return zero, false
	}
	v := b.buf[b.start]
	b.buf[b.start] = zero
	b.start = b.pos(1)
	b.n--
	return v, true
}

// PopBack removes and returns the item at the back of the buffer,
// or returns the zero value and false if the buffer is empty.
func (b *Buffer[E]) PopBack() (E, bool) {
	var zero E
	if b.n == 0 {
		return zero, false
	}
	p := b.pos(b.n - 1)
	v := b.buf[p]
	b.buf[p] = zero
	b.n--
	return v, true
}

// Wrapped reports whether the items currently wrap around the end of the storage.
func (b *Buffer[E]) Wrapped() bool {
	return b.start+b.n > len(b.buf)
}

// Normalize rearranges the storage in place so the items no longer wrap around the
// end. The items are centred in the storage, leaving room to push at either end.
func (b *Buffer[E]) Normalize() {
	if !b.Wrapped() {
		return
	}
	size := len(b.buf)
	newStart := (size - b.n) / 2
	nLeft := b.start + b.n - size // items wrapped to the beginning of buf
	nRight := size - b.start      // items at the end of buf
	if nLeft <= newStart {
		// the wrapped items fit in front of the new start without overlap
		copy(b.buf[newStart:], b.buf[b.start:])
		copy(b.buf[newStart+nRight:], b.buf[:nLeft])
		clear(b.buf[:newStart])
		clear(b.buf[newStart+b.n:])
	} else {
		inplace.RotateLeft(b.buf, b.start-newStart)
	}
	b.start = newStart
}

// Slice normalises the buffer and returns its items as a contiguous slice.
// The slice aliases the buffer's storage and is only valid until the next push or pop.
func (b *Buffer[E]) Slice() []E {
	b.Normalize()
	return b.buf[b.start : b.start+b.n]
}
