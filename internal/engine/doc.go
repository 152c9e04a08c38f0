// Package engine drives one visualizer session.
//
// A [Session] owns the bar array and is the [sorting.Emitter] every algorithm
// reports to. Each step blocks for its pacing delay, hands a frame to the
// [Renderer] and, for audible steps, retunes and replays the [Tone].
//
// Frontends translate their input into [Command] values and call
// [Session.Dispatch]; a command runs to completion before Dispatch returns.
// [ChannelRenderer] lets a frontend consume frames on another goroutine while
// keeping them in emission order.
package engine
