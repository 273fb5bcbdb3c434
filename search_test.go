package inplace_test

import (
	"testing"

	"github.com/lanrat/inplace"
)

func TestBinarySearch(t *testing.T) {
	for n := 0; n <= 100; n++ {
		s := identity(n)
		for find := -2; find <= n+2; find++ {
			i, ok := inplace.BinarySearch(s, inplace.SearchOrdered(find))
			if find < 0 || find >= n {
				if ok || i != -1 {
					t.Fatalf("n=%d: found absent %d at %d", n, find, i)
				}
				continue
			}
			if !ok || i != find {
				t.Fatalf("n=%d: BinarySearch(%d) = %d, %v", n, find, i, ok)
			}
		}
	}
}

func TestBinarySearchCallCount(t *testing.T) {
	s := identity(1 << 10)
	calls := 0
	search := inplace.SearchOrdered(1000)
	_, ok := inplace.BinarySearch(s, func(v int) int {
		calls++
		return search(v)
	})
	if !ok {
		t.Fatalf("1000 not found")
	}
	if calls > 11 {
		t.Fatalf("took %d probes for 1024 elements", calls)
	}
}

func TestBinarySearchDuplicates(t *testing.T) {
	s := []int{1, 2, 2, 2, 2, 3, 5}
	i, ok := inplace.BinarySearch(s, inplace.SearchOrdered(2))
	if !ok || s[i] != 2 {
		t.Fatalf("BinarySearch(2) = %d, %v", i, ok)
	}
	if _, ok := inplace.BinarySearch(s, inplace.SearchOrdered(4)); ok {
		t.Fatalf("found absent 4")
	}
}

func TestLinearSearch(t *testing.T) {
	for n := 0; n <= 30; n++ {
		s := identity(n)
		inplace.Reverse(s)
		for find := -2; find <= n+2; find++ {
			i, ok := inplace.LinearSearch(s, inplace.SearchOrdered(find))
			if find < 0 || find >= n {
				if ok || i != -1 {
					t.Fatalf("n=%d: found absent %d at %d", n, find, i)
				}
				continue
			}
			if !ok || s[i] != find {
				t.Fatalf("n=%d: LinearSearch(%d) = %d, %v", n, find, i, ok)
			}
		}
	}

	s := []string{"b", "a", "b"}
	if i, _ := inplace.LinearSearch(s, inplace.SearchOrdered("b")); i != 0 {
		t.Fatalf("first match at %d; want 0", i)
	}
}
