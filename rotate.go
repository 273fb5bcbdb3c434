// Package inplace implements allocation-frugal algorithms that mutate and query
// slices in place: rotation, shuffling, partitioning, sorting, selection,
// searching, merging and permutation enumeration.
//
// Every function works on a caller-owned slice and an ordering supplied as a
// CompareFunc or SearchFunc. Nothing in this package retains a reference to the
// caller's slice after returning, apart from the index buffer owned by a Permutation.
//
// The sorts in this package are NOT stable.
package inplace

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Swap exchanges s[i] and s[j].
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

// GCD returns the greatest common divisor of two non-negative integers using the
// binary GCD algorithm. GCD(a, 0) is a and GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}

	// power of two divisor common to both
	var shift uint
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}

	// remaining factors of two in a are not common
	for a&1 == 0 {
		a >>= 1
	}

	for b != 0 {
		for b&1 == 0 {
			b >>= 1
		}
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}

// RoundUpPow2 returns the smallest power of two greater than or equal to x.
// RoundUpPow2(0) is 0, and values above the largest representable power of two wrap to 0.
func RoundUpPow2[T constraints.Unsigned](x T) T {
	if x == 0 {
		return 0
	}
	x--
	for s := uint(1); s < 64; s <<= 1 {
		x |= x >> s
	}
	return x + 1
}

// RotateLeft cyclically shifts s towards index zero by shift positions,
// so that afterwards s[i] holds the value previously at s[(i+shift) % len(s)].
// It walks gcd(len(s), shift) independent cycles holding a single element of scratch.
// A negative shift panics.
func RotateLeft[E any](s []E, shift int) {
	if shift < 0 {
		panic(fmt.Sprintf("inplace: RotateLeft negative shift %d", shift))
	}
	n := len(s)
	if n <= 1 {
		return
	}
	shift %= n
	if shift == 0 {
		return
	}

	cycles := GCD(n, shift)
	for i := 0; i < cycles; i++ {
		tmp := s[i]
		j := i
		// copy k -> j until the cycle closes back on i, which was saved in tmp
		for {
			k := j + shift
			if k >= n {
				k -= n
			}
			if k == i {
				break
			}
			s[j] = s[k]
			j = k
		}
		s[j] = tmp
	}
}

// RotateRight cyclically shifts s away from index zero by shift positions.
// Rotating right by shift is rotating left by len(s) - shift%len(s).
// A negative shift panics.
func RotateRight[E any](s []E, shift int) {
	if shift < 0 {
		panic(fmt.Sprintf("inplace: RotateRight negative shift %d", shift))
	}
	n := len(s)
	if n <= 1 {
		return
	}
	shift %= n
	if shift == 0 {
		return
	}
	RotateLeft(s, n-shift)
}

// Reverse reverses the order of the elements of s.
func Reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
