package config

import "sort"

var Presets = map[string]*PacingConfig{
	"classic": {StepMs: DefaultStepMs, BubbleMs: DefaultBubbleMs, RedrawMs: DefaultRedrawMs, DebugMs: DefaultDebugMs},
	"slow":    {StepMs: 40, BubbleMs: 5, RedrawMs: 40, DebugMs: 1},
	"fast":    {StepMs: 2, BubbleMs: 0, RedrawMs: 2, DebugMs: 0},
	"instant": {StepMs: 0, BubbleMs: 0, RedrawMs: 0, DebugMs: 0},
}

func GetPreset(name string) *PacingConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
