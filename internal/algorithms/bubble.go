package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// BubbleDelay is bubble sort's pacing; it makes far more steps than the rest.
const BubbleDelay = time.Millisecond

// Bubble sort with early exit. Best: O(n), Worst: O(n^2), Average: O(n^2).
type Bubble struct {
	Delay time.Duration
	// Passes is the number of passes made by the last Sort.
	Passes int
}

func NewBubble(delay time.Duration) *Bubble {
	return &Bubble{Delay: delay}
}

func (s *Bubble) Name() string { return "bubble" }

func (s *Bubble) Sort(a *sorting.Array, e sorting.Emitter) {
	n := a.Len()
	s.Passes = 0

	for i := 0; i < n-1; i++ {
		s.Passes++
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if a.Less(j+1, j) {
				a.Swap(j, j+1)
				touch(e, j, s.Delay)
				swapped = true
			}
		}

		if !swapped {
			break
		}
	}
}
