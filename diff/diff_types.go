package diff

import "fmt"

// Delta represents the type of difference found when comparing two sorted slices.
// It indicates whether an item is unique to the first slice (OLD) or the second (NEW).
type Delta int

const (
	// NEW indicates an item that exists only in the second slice (B).
	NEW Delta = iota // +

	// OLD indicates an item that exists only in the first slice (A).
	OLD // -
)

func (d Delta) String() string {
	switch d {
	case NEW:
		return ">"
	case OLD:
		return "<"
	default:
		return "?"
	}
}

// ResultFunc is called once for each item that appears in only one of the two slices.
// If it returns an error the diff stops and returns that error.
type ResultFunc[E any] func(Delta, E) error

// Result contains statistical information about the differences between two sorted slices.
type Result struct {
	// ExtraA is the count of items that exist only in slice A (OLD items)
	ExtraA uint64

	// ExtraB is the count of items that exist only in slice B (NEW items)
	ExtraB uint64

	// TotalA is the total count of items visited in slice A
	TotalA uint64

	// TotalB is the total count of items visited in slice B
	TotalB uint64

	// Common is the count of items that exist in both slices
	Common uint64
}

func (r *Result) String() string {
	return fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
}

// ChanResult holds a single diff result for consumers reading from a channel.
type ChanResult[E any] struct {
	// D indicates whether the item is NEW (only in B) or OLD (only in A)
	D Delta
	// Item is the value that differs between the slices
	Item E
}

// ResultChan returns a ResultFunc that forwards every difference to the returned
// channel, so results can be consumed by another goroutine while the diff runs.
// The caller closes the channel once the diff has returned.
func ResultChan[E any]() (ResultFunc[E], chan *ChanResult[E]) {
	c := make(chan *ChanResult[E], 1)
	f := func(d Delta, item E) error {
		c <- &ChanResult[E]{D: d, Item: item}
		return nil
	}
	return f, c
}
