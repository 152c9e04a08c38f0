package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the bar chart and its side panel.
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Highlight lipgloss.Color
	Sorted    lipgloss.Color
	Text      lipgloss.Color
	Value     lipgloss.Color
	Muted     lipgloss.Color
	Status    lipgloss.Color
}

// Themes in cycle order. minimal uses the desktop window's colors.
var Themes = []Theme{
	{
		Name:      "minimal",
		Bar:       lipgloss.Color("#ffffff"),
		Highlight: lipgloss.Color("#00ff00"),
		Sorted:    lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#ffffff"),
		Value:     lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
		Status:    lipgloss.Color("#ffaa00"),
	},
	{
		Name:      "phosphor",
		Bar:       lipgloss.Color("#00aa00"),
		Highlight: lipgloss.Color("#ccffcc"),
		Sorted:    lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Value:     lipgloss.Color("#88ff88"),
		Muted:     lipgloss.Color("#005500"),
		Status:    lipgloss.Color("#ffff00"),
	},
	{
		Name:      "amber",
		Bar:       lipgloss.Color("#cc7700"),
		Highlight: lipgloss.Color("#ffffff"),
		Sorted:    lipgloss.Color("#ffcc00"),
		Text:      lipgloss.Color("#ffb000"),
		Value:     lipgloss.Color("#ffd27f"),
		Muted:     lipgloss.Color("#664400"),
		Status:    lipgloss.Color("#ff5555"),
	},
}

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t in the cycle.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
