package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/sorting"
)

func newTestModel() Model {
	reg := experiment.NewRegistry(experiment.Pacing{})
	return NewModel(reg, Options{
		Engine: engine.Config{Seed: 1, Sleep: func(time.Duration) {}},
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestKeyName(t *testing.T) {
	require.Equal(t, engine.KeyShuffle, keyName(tea.KeyMsg{Type: tea.KeySpace}))
	require.Equal(t, engine.KeyRedraw, keyName(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, engine.KeyClose, keyName(tea.KeyMsg{Type: tea.KeyEsc}))
	require.Equal(t, engine.KeyClose, keyName(runes("q")))
	require.Equal(t, engine.KeyClose, keyName(tea.KeyMsg{Type: tea.KeyCtrlC}))
	require.Equal(t, "3", keyName(runes("3")))
}

func TestModelIgnoresCommandsWhileRunning(t *testing.T) {
	m := newTestModel()
	require.True(t, m.running)

	m, cmd := update(t, m, runes("1"))
	require.Nil(t, cmd)
	require.Empty(t, m.current)

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.Nil(t, cmd)
}

func TestModelDefersQuitUntilRunEnds(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runes("q"))
	require.Nil(t, cmd)
	require.True(t, m.quitting)
	require.Contains(t, m.View(), "QUITTING")

	m, cmd = update(t, m, doneMsg{cmd: engine.Command{Op: engine.OpShuffle}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, m.running)
}

func TestModelQuitsWhenIdle(t *testing.T) {
	m := newTestModel()
	m.running = false

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelRunsAlgorithm(t *testing.T) {
	m := newTestModel()
	m.running = false

	m, cmd := update(t, m, runes("2"))
	require.NotNil(t, cmd)
	require.True(t, m.running)
	require.Equal(t, "merge", m.current)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var last sorting.Frame
	var msg tea.Msg
	for msg == nil {
		select {
		case f := <-m.frames.Frames():
			last = f
		case msg = <-done:
		}
	}
	select {
	case f := <-m.frames.Frames():
		last = f
	default:
	}
	require.True(t, last.Sorted)

	m, cmd = update(t, m, msg)
	require.Nil(t, cmd)
	require.False(t, m.running)
	require.NoError(t, m.err)
	require.Equal(t, "merge", m.last.Algorithm)
	require.Positive(t, m.last.Stats.Comparisons)
	require.Contains(t, m.View(), "LAST RUN")
}

func TestModelTracksRunFrames(t *testing.T) {
	m := newTestModel()
	m.inRun = true

	values := make([]int, sorting.Size)
	m, cmd := update(t, m, frameMsg{Values: values, Highlight: 10})
	require.NotNil(t, cmd)
	require.Equal(t, 10, m.frame.Highlight)
	require.Equal(t, []float64{engine.PitchForIndex(10)}, m.contour)
	require.InDelta(t, 0.01, m.coverage.Value(), 1e-9)

	m, _ = update(t, m, frameMsg{Values: values, Highlight: 0, Sorted: true})
	require.Len(t, m.contour, 1)
	require.Contains(t, m.View(), "SORTED")
}

func TestModelCyclesTheme(t *testing.T) {
	m := newTestModel()
	start := m.theme.Name

	m, cmd := update(t, m, runes("t"))
	require.Nil(t, cmd)
	require.Equal(t, NextTheme(GetTheme(start)).Name, m.theme.Name)
	require.NotEqual(t, start, m.theme.Name)
}

func TestGetThemeFallsBack(t *testing.T) {
	require.Equal(t, "minimal", GetTheme("nope").Name)
	require.Equal(t, "amber", GetTheme("amber").Name)
	require.Equal(t, []string{"minimal", "phosphor", "amber"}, ThemeNames())
	require.Equal(t, Themes[0].Name, NextTheme(Themes[len(Themes)-1]).Name)
}
