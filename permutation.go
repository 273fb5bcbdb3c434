package inplace

import (
	"cmp"
	"iter"
	"math"
	"math/bits"
	"slices"
)

// largest index buffer whose size in bytes fits in an int
const maxPermutationSize = math.MaxInt / (bits.UintSize / 8)

// NextPermutation rearranges s into the next permutation in lexicographic order under
// compareFunc and reports true, or reports false and leaves s unchanged if s is already
// the lexicographically greatest arrangement (non-increasing).
// Repeated elements are handled naturally: each distinct arrangement of a multiset
// is produced exactly once.
func NextPermutation[E any](s []E, compareFunc CompareFunc[E]) bool {
	// find the longest non-increasing suffix s[i:]
	i := len(s) - 1
	for i > 0 && compareFunc(s[i-1], s[i]) >= 0 {
		i--
	}
	if i <= 0 {
		return false
	}
	// rightmost element of the suffix greater than the pivot s[i-1]
	j := len(s) - 1
	for compareFunc(s[j], s[i-1]) <= 0 {
		j--
	}
	s[i-1], s[j] = s[j], s[i-1]
	Reverse(s[i:])
	return true
}

// Permutation enumerates arrangements of an index sequence in lexicographic order.
// The first call to Next yields the initial arrangement, either the identity
// 0..n-1 or a caller supplied sequence that may contain repeated values, and each
// later call advances to the next arrangement until the greatest one has been seen.
//
// The index buffer is allocated on the first call to Next and reused across resets.
// The slice returned by Next aliases that buffer and is overwritten by the next call.
// A Permutation must not be used by multiple goroutines at once.
type Permutation struct {
	n       int
	seed    []int // nil means the identity
	idx     []int
	started bool
	done    bool
}

// NewPermutation returns a Permutation over the identity sequence 0..n-1.
// It returns a *SizeError if n is negative or too large to allocate.
func NewPermutation(n int) (*Permutation, error) {
	p := &Permutation{}
	if err := p.Resize(n); err != nil {
		return nil, err
	}
	return p, nil
}

// NewMultisetPermutation returns a Permutation starting from a copy of init.
// To enumerate every distinct arrangement of a multiset, pass its values sorted.
func NewMultisetPermutation(init []int) *Permutation {
	p := &Permutation{}
	p.ResetTo(init)
	return p
}

// Len returns the number of indices in each arrangement.
func (p *Permutation) Len() int {
	return p.n
}

// Next advances to the next arrangement and returns it with true,
// or returns nil and false once every arrangement has been produced.
// An empty Permutation produces nothing.
func (p *Permutation) Next() ([]int, bool) {
	if p.n == 0 || p.done {
		return nil, false
	}
	if !p.started {
		if cap(p.idx) < p.n {
			p.idx = make([]int, p.n)
		}
		p.idx = p.idx[:p.n]
		if p.seed != nil {
			copy(p.idx, p.seed)
		} else {
			for i := range p.idx {
				p.idx[i] = i
			}
		}
		p.started = true
		return p.idx, true
	}
	if !NextPermutation(p.idx, cmp.Compare[int]) {
		p.done = true
		return nil, false
	}
	return p.idx, true
}

// All returns an iterator over the remaining arrangements.
// The yielded slice is reused between iterations.
func (p *Permutation) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for idx, ok := p.Next(); ok; idx, ok = p.Next() {
			if !yield(idx) {
				return
			}
		}
	}
}

// Reset rewinds the enumeration so the next call to Next yields the initial arrangement again.
func (p *Permutation) Reset() {
	p.started = false
	p.done = false
}

// ResetTo rewinds the enumeration to start from a copy of init, which becomes the
// initial arrangement for later calls to Reset. The length may differ from before.
func (p *Permutation) ResetTo(init []int) {
	p.seed = slices.Clone(init)
	if p.seed == nil {
		p.seed = []int{}
	}
	p.n = len(init)
	p.Reset()
}

// Resize rewinds the enumeration to the identity sequence 0..n-1.
// It returns a *SizeError, leaving p unchanged, if n is negative or too large to allocate.
func (p *Permutation) Resize(n int) error {
	if n < 0 {
		return &SizeError{Size: n, Reason: "negative size"}
	}
	if n > maxPermutationSize {
		return &SizeError{Size: n, Reason: "index buffer exceeds the address space"}
	}
	p.seed = nil
	p.n = n
	p.Reset()
	return nil
}

// Release drops the index buffer. The Permutation keeps its initial arrangement
// and may be used again, in which case Next allocates a new buffer.
func (p *Permutation) Release() {
	p.idx = nil
	p.Reset()
}
