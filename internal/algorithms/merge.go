package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Merge sort. Best: O(n log n), Worst: O(n log n), Average: O(n log n).
//
// Ranges are inclusive on both ends. The left run wins ties, so the sort is
// stable.
type Merge struct {
	Delay time.Duration
}

func NewMerge(delay time.Duration) *Merge {
	return &Merge{Delay: delay}
}

func (s *Merge) Name() string { return "merge" }

func (s *Merge) Sort(a *sorting.Array, e sorting.Emitter) {
	s.SortRange(a, e, 0, a.Len()-1)
}

// SortRange sorts a[lo..hi].
func (s *Merge) SortRange(a *sorting.Array, e sorting.Emitter, lo, hi int) {
	if lo >= hi {
		return
	}

	mid := lo + (hi-lo)/2
	s.SortRange(a, e, lo, mid)
	s.SortRange(a, e, mid+1, hi)
	s.merge(a, e, lo, mid, hi)
}

// merge joins the sorted runs a[lo..mid] and a[mid+1..hi].
func (s *Merge) merge(a *sorting.Array, e sorting.Emitter, lo, mid, hi int) {
	left := make([]int, mid-lo+1)
	right := make([]int, hi-mid)

	for i := range left {
		left[i] = a.At(lo + i)
	}
	for j := range right {
		right[j] = a.At(mid + 1 + j)
	}

	li, ri, k := 0, 0, lo
	place := func(v int) {
		a.Set(k, v)
		touch(e, k, s.Delay)
		k++
	}

	for li < len(left) && ri < len(right) {
		if a.Cmp(left[li], right[ri]) <= 0 {
			place(left[li])
			li++
		} else {
			place(right[ri])
			ri++
		}
	}

	for ; li < len(left); li++ {
		place(left[li])
	}
	for ; ri < len(right); ri++ {
		place(right[ri])
	}
}
