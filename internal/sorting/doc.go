// Package sorting provides the shared primitives of the visualizer.
//
// The package defines the state every algorithm mutates and the contract
// through which it reports progress:
//
//   - [Array]: the fixed-size bar heights plus the sorted flag
//   - [Step]: one observable event (touched index, pacing delay, tone)
//   - [Emitter]: receives steps synchronously while an algorithm runs
//   - [Algorithm]: rearranges an [Array] in place, emitting steps
//   - [Frame]: immutable snapshot for renderers off the algorithm's goroutine
//
// # Example
//
//	arr := sorting.NewArray(sorting.Size)
//	arr.Shuffle(rand.New(rand.NewSource(1)))
//	algorithms.NewMerge(10 * time.Millisecond).Sort(arr, emitter)
//
// # Thread Safety
//
// Array is NOT thread-safe. Exactly one algorithm writes it at a time and
// renderers read it only from inside Emit, or through Frame copies.
package sorting
