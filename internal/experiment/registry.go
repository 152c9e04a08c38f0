package experiment

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Pacing holds the delays the registry hands to the algorithms it builds.
type Pacing struct {
	Step   time.Duration
	Bubble time.Duration
}

func DefaultPacing() Pacing {
	return Pacing{Step: algorithms.DefaultDelay, Bubble: algorithms.BubbleDelay}
}

// Entry describes one selectable algorithm.
type Entry struct {
	Name string
	// Key is the number key that starts the algorithm in the frontends.
	Key string
	// FinalDelay paces the all-green redraw after the algorithm returns.
	FinalDelay time.Duration
	build      func(Pacing) sorting.Algorithm
}

type Registry struct {
	pacing  Pacing
	entries map[string]Entry
	byKey   map[string]string
}

func NewRegistry(p Pacing) *Registry {
	r := &Registry{
		pacing:  p,
		entries: make(map[string]Entry),
		byKey:   make(map[string]string),
	}

	r.add(Entry{Name: "insertion", Key: "1", FinalDelay: p.Step, build: func(p Pacing) sorting.Algorithm { return algorithms.NewInsertion(p.Step) }})
	r.add(Entry{Name: "merge", Key: "2", FinalDelay: p.Step, build: func(p Pacing) sorting.Algorithm { return algorithms.NewMerge(p.Step) }})
	r.add(Entry{Name: "quick", Key: "3", FinalDelay: p.Step, build: func(p Pacing) sorting.Algorithm { return algorithms.NewQuick(p.Step) }})
	r.add(Entry{Name: "heap", Key: "4", FinalDelay: p.Step, build: func(p Pacing) sorting.Algorithm { return algorithms.NewHeap(p.Step) }})
	r.add(Entry{Name: "selection", Key: "5", FinalDelay: p.Step, build: func(p Pacing) sorting.Algorithm { return algorithms.NewSelection(p.Step) }})
	r.add(Entry{Name: "bubble", Key: "6", FinalDelay: p.Bubble, build: func(p Pacing) sorting.Algorithm { return algorithms.NewBubble(p.Bubble) }})

	return r
}

func (r *Registry) add(e Entry) {
	r.entries[e.Name] = e
	r.byKey[e.Key] = e.Name
}

func (r *Registry) Get(name string) (sorting.Algorithm, Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, Entry{}, fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, name)
	}
	return e.build(r.pacing), e, nil
}

// ForKey resolves a number key to an algorithm name.
func (r *Registry) ForKey(key string) (string, bool) {
	name, ok := r.byKey[key]
	return name, ok
}

// List returns the registered entries ordered by key.
func (r *Registry) List() []Entry {
	list := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list
}

func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return names
}
