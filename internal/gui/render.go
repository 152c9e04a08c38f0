package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/layout"
	"github.com/san-kum/sortviz/internal/sorting"
)

func DrawBars(f sorting.Frame) {
	for i, v := range f.Values {
		col := ColBar
		if f.Highlighted(i) {
			col = ColHighlight
		}
		x, y, w, h := layout.BarRect(i, v)
		rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), col)
	}
}
