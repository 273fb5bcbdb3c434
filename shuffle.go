package inplace

import (
	"fmt"
	"math/rand/v2"
)

// Shuffle randomly permutes s using a Fisher-Yates shuffle.
// If r is nil the process-wide generator from math/rand/v2 is used;
// pass a seeded *rand.Rand for reproducible output.
func Shuffle[E any](s []E, r Rand) {
	Sample(s, len(s), r)
}

// Sample moves m uniformly chosen elements of s to the front of s, in random order.
// The remaining len(s)-m elements are left in s[m:] in an unspecified order.
// m must be in [0, len(s)].
func Sample[E any](s []E, m int, r Rand) {
	n := len(s)
	if m < 0 || m > n {
		panic(fmt.Sprintf("inplace: Sample size %d out of range [0:%d]", m, n))
	}
	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}
	for i := 0; i < m; i++ {
		j := i + intN(n-i) // i <= j < n
		s[i], s[j] = s[j], s[i]
	}
}
