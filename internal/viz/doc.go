// Package viz provides the terminal frontend of the visualizer.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: runs the session on a command goroutine and paints each frame
//   - [Canvas]: Braille-based pixel canvas, one dot column per bar
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	1-6   - Shuffle and run an algorithm
//	Space - Shuffle
//	Enter - Redraw
//	T     - Cycle color themes
//	Q/Esc - Quit (after the current run)
package viz
