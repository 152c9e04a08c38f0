package experiment

import (
	"errors"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

func TestRegistryKeys(t *testing.T) {
	r := NewRegistry(DefaultPacing())

	tests := []struct {
		key  string
		name string
	}{
		{"1", "insertion"},
		{"2", "merge"},
		{"3", "quick"},
		{"4", "heap"},
		{"5", "selection"},
		{"6", "bubble"},
	}

	for _, tt := range tests {
		name, ok := r.ForKey(tt.key)
		if !ok || name != tt.name {
			t.Errorf("ForKey(%q) = %q, %v; want %q", tt.key, name, ok, tt.name)
		}
		alg, _, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if alg.Name() != tt.name {
			t.Errorf("Get(%q).Name() = %q", name, alg.Name())
		}
	}

	if _, ok := r.ForKey("7"); ok {
		t.Error("key 7 should not resolve")
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry(DefaultPacing())
	_, _, err := r.Get("bogo")
	if !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRegistryFinalDelay(t *testing.T) {
	r := NewRegistry(Pacing{Step: 7 * time.Millisecond, Bubble: 2 * time.Millisecond})

	_, bubble, _ := r.Get("bubble")
	if bubble.FinalDelay != 2*time.Millisecond {
		t.Errorf("bubble final delay = %v", bubble.FinalDelay)
	}
	_, merge, _ := r.Get("merge")
	if merge.FinalDelay != 7*time.Millisecond {
		t.Errorf("merge final delay = %v", merge.FinalDelay)
	}
}

func TestRegistryList(t *testing.T) {
	names := NewRegistry(DefaultPacing()).Names()
	want := []string{"insertion", "merge", "quick", "heap", "selection", "bubble"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}
