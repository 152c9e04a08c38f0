package sorting

import (
	"math/rand"
	"testing"
)

func TestArray_Shuffle(t *testing.T) {
	a := NewArray(Size)
	a.Sorted = true
	a.Stats.Swaps = 7

	a.Shuffle(rand.New(rand.NewSource(1)))

	if a.Len() != Size {
		t.Fatalf("Len() = %d, want %d", a.Len(), Size)
	}
	for i := 0; i < a.Len(); i++ {
		if v := a.At(i); v < 0 || v >= MaxHeight {
			t.Errorf("value[%d] = %d out of range", i, v)
		}
	}
	if a.Sorted {
		t.Error("Shuffle did not clear the sorted flag")
	}
	if a.Stats != (Stats{}) {
		t.Errorf("Shuffle did not reset stats: %+v", a.Stats)
	}
}

func TestArray_ShuffleTwiceDiffers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	a := NewArray(Size)

	a.Shuffle(rng)
	first := a.Values()
	a.Shuffle(rng)
	second := a.Values()

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("two shuffles produced identical arrays")
	}
}

func TestArray_Counters(t *testing.T) {
	a := FromValues([]int{3, 1, 2})

	if !a.Less(1, 0) {
		t.Error("Less(1, 0) = false, want true")
	}
	if got := a.Cmp(2, 2); got != 0 {
		t.Errorf("Cmp(2, 2) = %d, want 0", got)
	}
	if got := a.Cmp(5, 2); got != 1 {
		t.Errorf("Cmp(5, 2) = %d, want 1", got)
	}
	a.Swap(0, 1)
	a.Set(2, 9)

	want := Stats{Comparisons: 3, Swaps: 1, Writes: 1}
	if a.Stats != want {
		t.Errorf("Stats = %+v, want %+v", a.Stats, want)
	}
	if a.At(0) != 1 || a.At(1) != 3 || a.At(2) != 9 {
		t.Errorf("unexpected values %v", a.Values())
	}
}

func TestArray_ValuesIsCopy(t *testing.T) {
	a := FromValues([]int{1, 2})
	v := a.Values()
	v[0] = 99
	if a.At(0) == 99 {
		t.Error("Values did not return an independent copy")
	}
}

func TestArray_IsNonDecreasing(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{"empty", nil, true},
		{"single", []int{4}, true},
		{"equal", []int{2, 2, 2}, true},
		{"ascending", []int{1, 2, 3}, true},
		{"descending", []int{3, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromValues(tt.values).IsNonDecreasing(); got != tt.want {
				t.Errorf("IsNonDecreasing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFrame_Highlighted(t *testing.T) {
	f := Frame{Values: []int{1, 2, 3}, Highlight: 1}
	if f.Highlighted(0) || !f.Highlighted(1) {
		t.Error("only the touched bar should be highlighted")
	}
	f.Sorted = true
	if !f.Highlighted(0) || !f.Highlighted(2) {
		t.Error("every bar should be highlighted once sorted")
	}
}
