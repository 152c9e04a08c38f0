package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Heap sort. Best: O(n log n), Worst: O(n log n), Average: O(n log n).
type Heap struct {
	Delay time.Duration
}

func NewHeap(delay time.Duration) *Heap {
	return &Heap{Delay: delay}
}

func (s *Heap) Name() string { return "heap" }

func (s *Heap) Sort(a *sorting.Array, e sorting.Emitter) {
	n := a.Len()
	s.Build(a, e)

	for j := n - 1; j > 0; j-- {
		touch(e, j, s.Delay)
		a.Swap(0, j)
		s.heapify(a, e, j, 0)
	}
}

// Build turns the whole array into a max-heap, bottom-up.
func (s *Heap) Build(a *sorting.Array, e sorting.Emitter) {
	n := a.Len()
	for i := n/2 - 1; i >= 0; i-- {
		s.heapify(a, e, n, i)
	}
}

// heapify sifts a[i] down within the first n elements.
func (s *Heap) heapify(a *sorting.Array, e sorting.Emitter, n, i int) {
	largest := i
	left := 2*i + 1
	right := 2*i + 2

	if left < n && a.Less(largest, left) {
		largest = left
	}
	if right < n && a.Less(largest, right) {
		largest = right
	}

	touch(e, i, s.Delay)
	if largest != i {
		a.Swap(i, largest)
		s.heapify(a, e, n, largest)
	}
}
