package inplace_test

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lanrat/inplace"
)

func ExampleSort() {
	s := []int{5, 2, 8, 1, 9, 3}
	inplace.Sort(s, cmp.Compare[int])
	fmt.Println(s)
	// Output: [1 2 3 5 8 9]
}

func ExampleSort_byKey() {
	words := strings.Fields("banana kiwi apple fig")
	inplace.Sort(words, inplace.By(func(w string) int { return len(w) }))
	fmt.Println(words[0], words[len(words)-1])
	// Output: fig banana
}

func ExampleRotateLeft() {
	s := []int{0, 1, 2, 3, 4, 5}
	inplace.RotateLeft(s, 2)
	fmt.Println(s)
	inplace.RotateRight(s, 2)
	fmt.Println(s)
	// Output:
	// [2 3 4 5 0 1]
	// [0 1 2 3 4 5]
}

func ExampleSelect() {
	s := []int{9, 1, 8, 2, 7, 3, 6}
	fmt.Println(inplace.Select(s, 3, cmp.Compare[int]))
	// Output: 6
}

func ExampleMedian() {
	s := []float64{4, 1, 3, 2}
	m, _ := inplace.Median(s, cmp.Compare[float64], func(lo, hi float64) float64 { return (lo + hi) / 2 })
	fmt.Println(m)
	// Output: 2.5
}

func ExampleMedian5() {
	s := []string{"e", "b", "d", "a", "c"}
	i := inplace.Median5(s, 0, 1, 2, 3, 4, strings.Compare)
	fmt.Println(i, s[i])
	// Output: 4 c
}

func ExampleMerge() {
	s := []int{1, 4, 7, 2, 3, 9}
	inplace.Merge(s, 3, cmp.Compare[int])
	fmt.Println(s)
	// Output: [1 2 3 4 7 9]
}

func ExampleBinarySearch() {
	s := []int{1, 3, 5, 7, 9}
	i, ok := inplace.BinarySearch(s, inplace.SearchOrdered(7))
	fmt.Println(i, ok)
	_, ok = inplace.BinarySearch(s, inplace.SearchOrdered(4))
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}

func ExampleHeapSort() {
	s := []string{"pear", "apple", "fig"}
	inplace.HeapSort(s, inplace.Descending[string]())
	fmt.Println(s)
	// Output: [pear fig apple]
}

func ExampleShuffle() {
	s := []int{0, 1, 2, 3, 4}
	inplace.Shuffle(s, rand.New(rand.NewPCG(1, 2)))
	inplace.Sort(s, cmp.Compare[int])
	fmt.Println(s)
	// Output: [0 1 2 3 4]
}

func ExamplePermutation() {
	p, err := inplace.NewPermutation(3)
	if err != nil {
		panic(err)
	}
	for idx := range p.All() {
		fmt.Println(idx)
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

func ExampleNewMultisetPermutation() {
	p := inplace.NewMultisetPermutation([]int{0, 1, 1})
	for idx, ok := p.Next(); ok; idx, ok = p.Next() {
		fmt.Println(idx)
	}
	// Output:
	// [0 1 1]
	// [1 0 1]
	// [1 1 0]
}

func ExampleUniq() {
	s := []int{1, 1, 2, 3, 3, 3, 4}
	fmt.Println(inplace.Uniq(s, cmp.Compare[int]))
	// Output: [1 2 3 4]
}

func ExampleSortParallel() {
	s := make([]int, 100000)
	for i := range s {
		s[i] = len(s) - i
	}
	if err := inplace.SortParallel(context.Background(), s, cmp.Compare[int], nil); err != nil {
		panic(err)
	}
	fmt.Println(s[0], s[len(s)-1], inplace.IsSorted(s, cmp.Compare[int]))
	// Output: 1 100000 true
}
