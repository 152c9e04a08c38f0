package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Quick sort with Lomuto partitioning.
// Best: O(n log n), Worst: O(n^2), Average: O(n log n).
type Quick struct {
	Delay time.Duration
}

func NewQuick(delay time.Duration) *Quick {
	return &Quick{Delay: delay}
}

func (s *Quick) Name() string { return "quick" }

func (s *Quick) Sort(a *sorting.Array, e sorting.Emitter) {
	s.SortRange(a, e, 0, a.Len()-1)
}

// SortRange sorts a[p..r].
func (s *Quick) SortRange(a *sorting.Array, e sorting.Emitter, p, r int) {
	if p >= r {
		return
	}

	q := s.partition(a, e, p, r)
	s.SortRange(a, e, p, q-1)
	s.SortRange(a, e, q+1, r)
}

// partition moves everything smaller than a[r] to the front of the range and
// returns the pivot's final index. The pivot is swapped into place even when
// nothing was smaller.
func (s *Quick) partition(a *sorting.Array, e sorting.Emitter, p, r int) int {
	i := p - 1

	for j := p; j < r; j++ {
		if a.Less(j, r) {
			i++
			show(e, j, s.Delay)
			a.Swap(i, j)
			touch(e, i, s.Delay)
		}
	}

	show(e, r, s.Delay)
	a.Swap(i+1, r)
	touch(e, i+1, s.Delay)
	return i + 1
}
