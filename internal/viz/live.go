package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	canvasRows   = 20
	contourWidth = 32
)

type frameMsg sorting.Frame

// doneMsg reports the end of a dispatched command.
type doneMsg struct {
	cmd    engine.Command
	result engine.Result
	closed bool
	err    error
}

type Options struct {
	Engine engine.Config
	Tone   engine.Tone
	Theme  string
	// ToneHz is the measured fundamental of the loaded sample, 0 if unknown.
	ToneHz float64
}

// Model contains the session, the last received frame and UI context.
// The session is only touched by the command goroutine; the model reads
// the frames it forwards.
type Model struct {
	session  *engine.Session
	registry *experiment.Registry
	frames   *engine.ChannelRenderer
	canvas   *Canvas
	theme    Theme
	styles   styles
	frame    sorting.Frame
	coverage *metrics.Coverage
	contour  []float64
	running  bool
	inRun    bool
	quitting bool
	current  string
	last     engine.Result
	err      error
	toneHz   float64
}

// NewModel builds the model. The first shuffle is started by Init, so the
// model begins in the running state.
func NewModel(registry *experiment.Registry, opts Options) Model {
	frames := engine.NewChannelRenderer(1)
	theme := GetTheme(opts.Theme)
	return Model{
		session:  engine.New(registry, frames, opts.Tone, opts.Engine),
		registry: registry,
		frames:   frames,
		canvas:   NewCanvas(sorting.Size/2, canvasRows),
		theme:    theme,
		styles:   newStyles(theme),
		coverage: metrics.NewCoverage(sorting.Size),
		running:  true,
		toneHz:   opts.ToneHz,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForFrame(m.frames), dispatch(m.session, engine.Command{Op: engine.OpShuffle}))
}

func waitForFrame(r *engine.ChannelRenderer) tea.Cmd {
	return func() tea.Msg {
		return frameMsg(<-r.Frames())
	}
}

// dispatch runs cmd to completion on the command goroutine.
func dispatch(s *engine.Session, cmd engine.Command) tea.Cmd {
	return func() tea.Msg {
		closed, err := s.Dispatch(cmd)
		msg := doneMsg{cmd: cmd, closed: closed, err: err}
		if cmd.Op == engine.OpRun && err == nil {
			msg.result = s.Last()
		}
		return msg
	}
}

// keyName maps bubbletea key strings onto the shared key names.
func keyName(msg tea.KeyMsg) string {
	switch s := msg.String(); s {
	case " ":
		return engine.KeyShuffle
	case "q", "ctrl+c":
		return engine.KeyClose
	default:
		return s
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case frameMsg:
		m.observe(sorting.Frame(msg))
		return m, waitForFrame(m.frames)
	case doneMsg:
		m.running = false
		m.inRun = false
		m.err = msg.err
		if msg.cmd.Op == engine.OpRun && msg.err == nil {
			m.last = msg.result
		}
		if msg.closed || m.quitting {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "t" {
		m.theme = NextTheme(m.theme)
		m.styles = newStyles(m.theme)
		return m, nil
	}

	cmd := engine.CommandForKey(m.registry, keyName(msg))
	if cmd.Op == engine.OpNone {
		return m, nil
	}
	if m.running {
		// A run cannot be interrupted; only remember a close request.
		if cmd.Op == engine.OpClose {
			m.quitting = true
		}
		return m, nil
	}
	if cmd.Op == engine.OpClose {
		return m, tea.Quit
	}

	m.running = true
	if cmd.Op == engine.OpRun {
		m.current = cmd.Algorithm
		m.inRun = true
		m.coverage.Reset()
		m.contour = m.contour[:0]
	}
	return m, dispatch(m.session, cmd)
}

func (m *Model) observe(f sorting.Frame) {
	m.frame = f
	if f.Sorted || !m.inRun {
		return
	}
	m.coverage.Observe(sorting.Step{Index: f.Highlight})
	m.contour = append(m.contour, engine.PitchForIndex(f.Highlight))
	if len(m.contour) > contourWidth {
		m.contour = m.contour[len(m.contour)-contourWidth:]
	}
}

// renderCanvas paints the bars and colors the cell holding the highlight.
func (m Model) renderCanvas() string {
	m.canvas.DrawBars(m.frame)
	if m.frame.Sorted {
		return m.styles.sorted.Render(strings.TrimSuffix(m.canvas.String(), "\n"))
	}

	hi := -1
	if m.frame.Highlight >= 0 && m.frame.Highlight < len(m.frame.Values) {
		hi = CellOf(m.frame.Highlight)
	}
	rows := make([]string, len(m.canvas.Grid))
	for i, row := range m.canvas.Grid {
		if hi < 0 || hi >= len(row) {
			rows[i] = m.styles.bar.Render(string(row))
			continue
		}
		rows[i] = m.styles.bar.Render(string(row[:hi])) +
			m.styles.highlight.Render(string(row[hi])) +
			m.styles.bar.Render(string(row[hi+1:]))
	}
	return strings.Join(rows, "\n")
}

func (m Model) status() string {
	switch {
	case m.quitting:
		return "QUITTING AFTER RUN"
	case m.frame.Sorted:
		return "SORTED"
	case m.inRun:
		return "SORTING"
	case m.running:
		return "BUSY"
	}
	return "READY"
}

func (m Model) row(label, value string) string {
	return m.styles.label.Render(label) + m.styles.value.Render(value) + "\n"
}

func (m Model) View() string {
	var s strings.Builder
	title := "SORTVIZ"
	if m.current != "" {
		title += " · " + strings.ToUpper(m.current)
	}
	s.WriteString(m.styles.header.Render(title) + "\n")
	s.WriteString(m.styles.status.Render(m.status()) + "\n\n")

	s.WriteString(m.row("Coverage", ProgressBar(m.coverage.Value(), 16)))
	s.WriteString(m.row("Tone", Sparkline(m.contour, engine.PitchForIndex(0), engine.PitchForIndex(sorting.Size-1), 16)))
	if m.toneHz > 0 {
		s.WriteString(m.row("Sample", fmt.Sprintf("%.0f Hz", m.toneHz)))
	}

	if m.last.Algorithm != "" {
		st := m.last.Stats
		s.WriteString("\nLAST RUN\n")
		s.WriteString(m.row("Algorithm", m.last.Algorithm))
		s.WriteString(m.row("Compares", fmt.Sprint(st.Comparisons)))
		s.WriteString(m.row("Swaps", fmt.Sprint(st.Swaps)))
		s.WriteString(m.row("Writes", fmt.Sprint(st.Writes)))
		s.WriteString(m.row("Elapsed", m.last.Elapsed.Round(time.Millisecond).String()))
	}
	if m.err != nil {
		s.WriteString("\n" + m.styles.status.Render(m.err.Error()) + "\n")
	}

	var keys []string
	for _, e := range m.registry.List() {
		keys = append(keys, e.Key+":"+e.Name)
	}
	s.WriteString(m.styles.help.Render(strings.Join(keys, " ") + "\nSP:Shuffle ⏎:Redraw T:Theme Q:Quit"))

	canvasView := m.styles.canvas.Render(m.renderCanvas())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))
}

// RunInteractive starts the terminal frontend and blocks until it exits.
func RunInteractive(registry *experiment.Registry, opts Options) error {
	_, err := tea.NewProgram(NewModel(registry, opts), tea.WithAltScreen()).Run()
	return err
}
