package inplace_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lanrat/inplace"
)

func newRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(0x5eed, uint64(len(t.Name()))))
}

func TestShuffleKeepsElements(t *testing.T) {
	r := newRand(t)
	for n := 0; n <= 100; n++ {
		s := identity(n)
		inplace.Shuffle(s, r)
		slices.Sort(s)
		checkIdentity(t, s, "sorted shuffle")
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a, b := identity(64), identity(64)
	inplace.Shuffle(a, rand.New(rand.NewPCG(1, 2)))
	inplace.Shuffle(b, rand.New(rand.NewPCG(1, 2)))
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different shuffles:\n%v\n%v", a, b)
	}
	if slices.Equal(a, identity(64)) {
		t.Fatalf("shuffle of 64 elements left them in order")
	}
}

func TestShuffleNilRand(t *testing.T) {
	s := identity(10)
	inplace.Shuffle(s, nil)
	slices.Sort(s)
	checkIdentity(t, s, "sorted shuffle")
}

func TestSampleLeavesTailUntouched(t *testing.T) {
	r := newRand(t)
	const n = 20
	for m := 0; m <= n; m++ {
		s := identity(n)
		inplace.Sample(s, m, r)
		picked := make(map[int]bool)
		for _, v := range s[:m] {
			if picked[v] {
				t.Fatalf("m=%d: %d sampled twice: %v", m, v, s)
			}
			picked[v] = true
		}
		all := slices.Clone(s)
		slices.Sort(all)
		checkIdentity(t, all, "sorted sample")
	}
}

// every element should land in front roughly equally often
func TestSampleUniform(t *testing.T) {
	r := newRand(t)
	const n, m, rounds = 10, 3, 30000
	counts := make([]int, n)
	for i := 0; i < rounds; i++ {
		s := identity(n)
		inplace.Sample(s, m, r)
		for _, v := range s[:m] {
			counts[v]++
		}
	}
	want := rounds * m / n
	for v, c := range counts {
		if c < want*9/10 || c > want*11/10 {
			t.Errorf("element %d sampled %d times; want about %d", v, c, want)
		}
	}
}

func TestSampleOutOfRangePanics(t *testing.T) {
	for _, m := range []int{-1, 4} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Sample(m=%d) on 3 elements did not panic", m)
				}
			}()
			inplace.Sample([]int{1, 2, 3}, m, nil)
		}()
	}
}
