// Package opaque applies the in-place array algorithms to type-erased storage:
// a byte slice holding uniformly sized elements of a caller-chosen width.
// Elements are moved byte for byte and every access is bounds checked.
package opaque

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/lanrat/inplace"
)

// WidthError reports a buffer that cannot be viewed as elements of the given width.
type WidthError struct {
	// Width is the requested element width in bytes
	Width int
	// Len is the length of the buffer in bytes
	Len int
}

func (e *WidthError) Error() string {
	if e.Width <= 0 {
		return fmt.Sprintf("opaque: invalid element width %d", e.Width)
	}
	return fmt.Sprintf("opaque: buffer of %d bytes is not a whole number of %d byte elements", e.Len, e.Width)
}

// Array views a byte slice as len(data)/width elements of width bytes each.
// It does not copy data; all operations mutate the caller's buffer.
type Array struct {
	data  []byte
	width int
}

// New returns an Array over data. width must be positive and divide len(data).
func New(data []byte, width int) (*Array, error) {
	if width <= 0 || len(data)%width != 0 {
		return nil, &WidthError{Width: width, Len: len(data)}
	}
	return &Array{data: data, width: width}, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data) / a.width
}

// Width returns the element width in bytes.
func (a *Array) Width() int {
	return a.width
}

// At returns the bytes of element i. The result aliases the array and its capacity
// is capped so appending to it cannot overwrite the next element.
func (a *Array) At(i int) []byte {
	lo := i * a.width
	return a.data[lo : lo+a.width : lo+a.width]
}

// Swap exchanges elements i and j byte for byte.
func (a *Array) Swap(i, j int) {
	x, y := a.At(i), a.At(j)
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}
}

// RotateLeft cyclically shifts the elements towards index zero by shift positions,
// walking gcd(n, shift) cycles with a single element of scratch space.
// A negative shift panics.
func (a *Array) RotateLeft(shift int) {
	if shift < 0 {
		panic(fmt.Sprintf("opaque: RotateLeft negative shift %d", shift))
	}
	n := a.Len()
	if n <= 1 {
		return
	}
	shift %= n
	if shift == 0 {
		return
	}

	tmp := make([]byte, a.width)
	cycles := inplace.GCD(n, shift)
	for i := 0; i < cycles; i++ {
		copy(tmp, a.At(i))
		j := i
		for {
			k := j + shift
			if k >= n {
				k -= n
			}
			if k == i {
				break
			}
			copy(a.At(j), a.At(k))
			j = k
		}
		copy(a.At(j), tmp)
	}
}

// RotateRight cyclically shifts the elements away from index zero by shift positions.
// A negative shift panics.
func (a *Array) RotateRight(shift int) {
	if shift < 0 {
		panic(fmt.Sprintf("opaque: RotateRight negative shift %d", shift))
	}
	n := a.Len()
	if n <= 1 {
		return
	}
	if shift %= n; shift != 0 {
		a.RotateLeft(n - shift)
	}
}

// Reverse reverses the order of the elements.
func (a *Array) Reverse() {
	for i, j := 0, a.Len()-1; i < j; i, j = i+1, j-1 {
		a.Swap(i, j)
	}
}

// Sample moves m uniformly chosen elements to the front, as inplace.Sample.
// A nil r uses the process-wide generator from math/rand/v2.
func (a *Array) Sample(m int, r inplace.Rand) {
	n := a.Len()
	if m < 0 || m > n {
		panic(fmt.Sprintf("opaque: Sample size %d out of range [0:%d]", m, n))
	}
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := 0; i < m; i++ {
		a.Swap(i, i+intN(n-i))
	}
}

// Shuffle randomly permutes the elements.
func (a *Array) Shuffle(r inplace.Rand) {
	a.Sample(a.Len(), r)
}

// BinarySearch returns the index of the first element for which search returns zero,
// or -1 and false if there is none. The elements must be sorted consistently with search.
func (a *Array) BinarySearch(search inplace.SearchFunc[[]byte]) (int, bool) {
	n := a.Len()
	i := sort.Search(n, func(i int) bool { return search(a.At(i)) >= 0 })
	if i < n && search(a.At(i)) == 0 {
		return i, true
	}
	return -1, false
}

// LinearSearch returns the index of the first element for which search returns zero,
// or -1 and false if there is none.
func (a *Array) LinearSearch(search inplace.SearchFunc[[]byte]) (int, bool) {
	for i := 0; i < a.Len(); i++ {
		if search(a.At(i)) == 0 {
			return i, true
		}
	}
	return -1, false
}

// IsSorted reports whether the elements are in ascending order under compareFunc.
func (a *Array) IsSorted(compareFunc inplace.CompareFunc[[]byte]) bool {
	for i := 1; i < a.Len(); i++ {
		if compareFunc(a.At(i-1), a.At(i)) > 0 {
			return false
		}
	}
	return true
}
