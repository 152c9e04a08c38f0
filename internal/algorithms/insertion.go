package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Insertion sort. Best: O(n), Worst: O(n^2), Average: O(n^2).
type Insertion struct {
	Delay time.Duration
}

func NewInsertion(delay time.Duration) *Insertion {
	return &Insertion{Delay: delay}
}

func (s *Insertion) Name() string { return "insertion" }

func (s *Insertion) Sort(a *sorting.Array, e sorting.Emitter) {
	for i := 1; i < a.Len(); i++ {
		key := a.At(i)
		j := i - 1

		for j >= 0 && a.Cmp(a.At(j), key) > 0 {
			a.Set(j+1, a.At(j))
			touch(e, j+1, s.Delay)
			j--
		}

		a.Set(j+1, key)
	}
}
