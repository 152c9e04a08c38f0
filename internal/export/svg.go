package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/layout"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	svgBackground = "#000000"
	svgBar        = "#ffffff"
	svgHighlight  = "#00ff00"
)

// FrameSVG draws a frame on the full render surface, one rect per bar.
func FrameSVG(f sorting.Frame) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, layout.Width, layout.Height, layout.Width, layout.Height, svgBackground))

	for i, v := range f.Values {
		fill := svgBar
		if f.Highlighted(i) {
			fill = svgHighlight
		}
		x, y, w, h := layout.BarRect(i, v)
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x, y, w, h, fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ContourSVG plots the highlighted index of each step as a polyline,
// left to right in step order, index 0 at the bottom.
func ContourSVG(indices []int, n, width, height int, strokeColor string) string {
	if len(indices) < 2 || n < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1" d="M`,
		width, height, width, height, svgBackground, strokeColor))

	last := float64(len(indices) - 1)
	for i, idx := range indices {
		x := float64(i) / last * float64(width)
		y := float64(height) - float64(idx)/float64(n-1)*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
