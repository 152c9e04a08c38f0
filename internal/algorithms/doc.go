// Package algorithms implements the six instrumented sorts.
//
// Every algorithm sorts a [sorting.Array] in place and reports each
// comparison-driving mutation through a [sorting.Emitter]. The emitter call is
// synchronous, so a blocking emitter paces the algorithm.
package algorithms

import (
	"time"

	"github.com/san-kum/sortviz/internal/sorting"
)

// DefaultDelay is the pacing delay used by every algorithm except bubble sort.
const DefaultDelay = 10 * time.Millisecond

// touch emits an audible step at i.
func touch(e sorting.Emitter, i int, d time.Duration) {
	e.Emit(sorting.Step{Index: i, Delay: d, Sound: true})
}

// show emits a redraw-only step at i.
func show(e sorting.Emitter, i int, d time.Duration) {
	e.Emit(sorting.Step{Index: i, Delay: d})
}
