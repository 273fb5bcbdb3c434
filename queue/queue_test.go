package queue_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lanrat/inplace/queue"
)

type job struct {
	priority int
	name     string
}

func TestInit0(t *testing.T) {
	q := queue.NewPriorityQueue(cmp.Compare[int])
	for i := 20; i > 0; i-- {
		q.Push(0) // all elements are the same
	}

	l := q.Len()
	if l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if x != 0 {
			t.Errorf("%d.th pop got %d; want %d", i, x, 0)
		}
	}
}

func Test(t *testing.T) {
	q := queue.NewPriorityQueue(cmp.Compare[int])
	l := q.Len()
	if l != 0 {
		t.Fatalf("queue len is %d, expected %d", l, 0)
	}

	for i := 20; i > 10; i-- {
		q.Push(i)
	}

	l = q.Len()
	if l != 10 {
		t.Fatalf("queue len is %d, expected %d", l, 10)
	}

	for i := 10; i > 0; i-- {
		q.Push(i)
	}

	l = q.Len()
	if l != 20 {
		t.Fatalf("queue len is %d, expected %d", l, 20)
	}

	for i := 1; q.Len() > 0; i++ {
		x := q.Peek()
		y := q.Pop()
		if x != y {
			t.Fatalf("q.Peek() and q.Pop() returned different values %d %d", x, y)
		}
		if i < 20 {
			q.Push(20 + i)
		}
		if x != i {
			t.Errorf("%d.th pop got %d; want %d", i, x, i)
		}
	}
}

func TestRandomOrder(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	q := queue.NewPriorityQueue(cmp.Compare[int])
	want := make([]int, 500)
	for i := range want {
		want[i] = r.IntN(100)
		q.Push(want[i])
	}
	slices.Sort(want)

	for i, w := range want {
		if got := q.Pop(); got != w {
			t.Fatalf("pop %d got %d; want %d", i, got, w)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue len is %d after draining", q.Len())
	}
}

func TestReplaceTop(t *testing.T) {
	q := queue.NewPriorityQueue(cmp.Compare[int])
	for _, v := range []int{5, 1, 3} {
		q.Push(v)
	}
	if old := q.ReplaceTop(4); old != 1 {
		t.Fatalf("ReplaceTop returned %d; want 1", old)
	}
	var got []int
	for q.Len() > 0 {
		got = append(got, q.Pop())
	}
	if !slices.Equal(got, []int{3, 4, 5}) {
		t.Fatalf("got %v; want [3 4 5]", got)
	}
}

func TestPeekUpdate(t *testing.T) {
	q := queue.NewPriorityQueue(func(a, b *job) int { return cmp.Compare(a.priority, b.priority) })
	q.Push(&job{priority: 1, name: "a"})
	q.Push(&job{priority: 2, name: "b"})
	q.Push(&job{priority: 3, name: "c"})

	q.Peek().priority = 10
	q.PeekUpdate()

	var names []string
	for q.Len() > 0 {
		names = append(names, q.Pop().name)
	}
	if !slices.Equal(names, []string{"b", "c", "a"}) {
		t.Fatalf("got %v; want [b c a]", names)
	}
}
