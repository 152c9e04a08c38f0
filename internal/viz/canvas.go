package viz

import (
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in sub-pixels.
func (c *Canvas) Dots() (w, h int) { return c.Width * 2, c.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// Column fills sub-pixel column x with h dots rising from the bottom edge.
func (c *Canvas) Column(x, h int) {
	_, dh := c.Dots()
	for y := dh - 1; y >= dh-h && y >= 0; y-- {
		c.Set(x, y)
	}
}

// DrawBars paints one dot column per bar, scaled so that the tallest
// possible bar fills the canvas.
func (c *Canvas) DrawBars(f sorting.Frame) {
	c.Clear()
	_, dh := c.Dots()
	for i, v := range f.Values {
		c.Column(i, v*dh/sorting.MaxHeight)
	}
}

// CellOf returns the cell column holding bar i.
func CellOf(i int) int { return i / 2 }

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
