package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	bar       lipgloss.Style
	highlight lipgloss.Style
	sorted    lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	status    lipgloss.Style
	help      lipgloss.Style
	panel     lipgloss.Style
	canvas    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		bar:       lipgloss.NewStyle().Foreground(t.Bar),
		highlight: lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		sorted:    lipgloss.NewStyle().Foreground(t.Sorted),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		value:  lipgloss.NewStyle().Foreground(t.Value),
		status: lipgloss.NewStyle().Bold(true).Foreground(t.Status),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Muted).
			Padding(1, 2).
			Width(36),
		canvas: lipgloss.NewStyle().Padding(1, 2),
	}
}

// ProgressBar renders percent in [0, 1] as a bar of width cells.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders the last width values, scaled between lo and hi.
func Sparkline(values []float64, lo, hi float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	rng := hi - lo
	if rng <= 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}
