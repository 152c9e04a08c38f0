package sorting

import "math/rand"

const (
	// Size is the number of bars every frontend works with.
	Size = 100
	// MaxHeight is the exclusive upper bound of a bar height.
	MaxHeight = 500
)

// Stats counts the element operations performed through an Array.
type Stats struct {
	Comparisons int
	Swaps       int
	Writes      int
}

type Array struct {
	values []int
	Sorted bool
	Stats  Stats
}

func NewArray(n int) *Array {
	return &Array{values: make([]int, n)}
}

// FromValues copies values into a new Array.
func FromValues(values []int) *Array {
	a := NewArray(len(values))
	copy(a.values, values)
	return a
}

func (a *Array) Len() int { return len(a.values) }

func (a *Array) At(i int) int { return a.values[i] }

func (a *Array) Set(i, v int) {
	a.values[i] = v
	a.Stats.Writes++
}

// Swap exchanges the values at i and j.
func (a *Array) Swap(i, j int) {
	a.values[i], a.values[j] = a.values[j], a.values[i]
	a.Stats.Swaps++
}

// Less compares the values stored at i and j.
func (a *Array) Less(i, j int) bool {
	a.Stats.Comparisons++
	return a.values[i] < a.values[j]
}

// Cmp compares two bar heights, returning -1, 0 or +1.
func (a *Array) Cmp(x, y int) int {
	a.Stats.Comparisons++
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Shuffle fills every slot with an independent height in [0, MaxHeight)
// and marks the array unsorted.
func (a *Array) Shuffle(rng *rand.Rand) {
	for i := range a.values {
		a.values[i] = rng.Intn(MaxHeight)
	}
	a.Sorted = false
	a.Stats = Stats{}
}

// Values returns a copy of the bar heights.
func (a *Array) Values() []int {
	c := make([]int, len(a.values))
	copy(c, a.values)
	return c
}

func (a *Array) Snapshot(highlight int) Frame {
	return Frame{Values: a.Values(), Highlight: highlight, Sorted: a.Sorted}
}

// IsNonDecreasing reports whether the heights are in sorted order.
func (a *Array) IsNonDecreasing() bool {
	for i := 1; i < len(a.values); i++ {
		if a.values[i-1] > a.values[i] {
			return false
		}
	}
	return true
}
