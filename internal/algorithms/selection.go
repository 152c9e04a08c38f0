package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Selection sort. Best: O(n^2), Worst: O(n^2), Average: O(n^2).
type Selection struct {
	Delay time.Duration
}

func NewSelection(delay time.Duration) *Selection {
	return &Selection{Delay: delay}
}

func (s *Selection) Name() string { return "selection" }

func (s *Selection) Sort(a *sorting.Array, e sorting.Emitter) {
	n := a.Len()
	for i := 0; i < n-1; i++ {
		minIndex := i
		for j := i + 1; j < n; j++ {
			if a.Less(j, minIndex) {
				minIndex = j
				touch(e, j, s.Delay)
			}
		}

		touch(e, i, s.Delay)
		a.Swap(minIndex, i)
	}
}
