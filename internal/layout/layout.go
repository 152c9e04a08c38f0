// Package layout holds the geometry of the bar chart surface.
package layout

const (
	Width  = 1200
	Height = 600

	BarWidth   = 10
	BarSpacing = 12
)

// BarRect returns the rectangle of bar i: bars grow up from the bottom edge.
func BarRect(i, value int) (x, y, w, h int) {
	return i * BarSpacing, Height - value, BarWidth, value
}
