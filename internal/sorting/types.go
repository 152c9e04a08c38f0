package sorting

import "time"

// Step is emitted after a mutation that should be seen and heard.
type Step struct {
	Index int
	Delay time.Duration
	// Sound is false for redraw-only steps.
	Sound bool
}

type Emitter interface {
	Emit(s Step)
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(s Step)

func (f EmitterFunc) Emit(s Step) { f(s) }

// Discard drops every step.
var Discard Emitter = EmitterFunc(func(Step) {})

type Algorithm interface {
	Name() string
	Sort(a *Array, e Emitter)
}

// Frame is a read-only copy of the array at the moment a step was emitted.
type Frame struct {
	Values    []int
	Highlight int
	Sorted    bool
}

// Highlighted reports whether bar i is drawn in the highlight color.
func (f Frame) Highlighted(i int) bool {
	return f.Sorted || i == f.Highlight
}
