package gui

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/layout"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	Title   = "Sorting Algorithm Visualizer"
	idleFPS = 60
)

// Theme Colors
var (
	ColBg        = rl.Black
	ColBar       = rl.White
	ColHighlight = rl.Green
	ColText      = rl.NewColor(140, 140, 140, 255)
	ColTextDim   = rl.NewColor(60, 60, 60, 255)
)

// Options carries what the window shows besides the bars.
type Options struct {
	Engine engine.Config
	Tone   engine.Tone
	// ToneHz is the fundamental of the loaded sample, shown in the HUD.
	ToneHz  float64
	ShowHUD bool
}

type App struct {
	Session  *engine.Session
	Registry *experiment.Registry
	Frame    sorting.Frame
	ShowHUD  bool
	ToneHz   float64

	running string
	lastErr error
}

// initWindow opens the bar chart window and disables the default exit key.
func initWindow() {
	rl.InitWindow(layout.Width, layout.Height, Title)
	rl.SetTargetFPS(idleFPS)
	rl.SetExitKey(0)
}

// NewApp creates the app and the session that renders into it.
func NewApp(registry *experiment.Registry, opts Options) *App {
	app := &App{
		Registry: registry,
		ShowHUD:  opts.ShowHUD,
		ToneHz:   opts.ToneHz,
	}
	app.Session = engine.New(registry, app, opts.Tone, opts.Engine)
	for _, m := range metrics.Defaults(sorting.Size) {
		app.Session.AddMetric(m)
	}
	return app
}

// Run opens the window, shuffles once and polls commands until the window is
// closed. It blocks until then.
func Run(registry *experiment.Registry, opts Options) {
	initWindow()
	defer rl.CloseWindow()

	app := NewApp(registry, opts)
	app.Session.Shuffle()
	app.RunLoop()
}

// RunLoop checks for a close request only between commands, so a running
// sort always completes.
func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		cmd := a.poll()
		if cmd.Op == engine.OpNone {
			a.Draw()
			continue
		}

		if a.dispatch(cmd) {
			return
		}
	}
}

func (a *App) dispatch(cmd engine.Command) bool {
	slog.Debug("command", "op", cmd.Op, "algorithm", cmd.Algorithm)

	// step pacing comes from the emitter, not the frame limiter
	rl.SetTargetFPS(0)
	defer rl.SetTargetFPS(idleFPS)

	a.running = cmd.Algorithm
	closed, err := a.Session.Dispatch(cmd)
	a.running = ""
	a.lastErr = err
	if err != nil {
		slog.Warn("command failed", "op", cmd.Op, "err", err)
	}
	return closed
}

var keyNames = []struct {
	key  int32
	name string
}{
	{rl.KeyOne, "1"},
	{rl.KeyTwo, "2"},
	{rl.KeyThree, "3"},
	{rl.KeyFour, "4"},
	{rl.KeyFive, "5"},
	{rl.KeySix, "6"},
	{rl.KeySpace, engine.KeyShuffle},
	{rl.KeyEnter, engine.KeyRedraw},
	{rl.KeyEscape, engine.KeyClose},
}

// poll returns at most one command per tick.
func (a *App) poll() engine.Command {
	for _, k := range keyNames {
		if rl.IsKeyPressed(k.key) {
			return engine.CommandForKey(a.Registry, k.name)
		}
	}
	return engine.Command{}
}

// Render implements engine.Renderer: it keeps the frame and paints it.
func (a *App) Render(f sorting.Frame) {
	a.Frame = f
	a.Draw()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	DrawBars(a.Frame)
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	last := a.Session.Last()

	switch {
	case a.running != "":
		drawText(a.running, 20, 20, 20, ColText)
	case last.Algorithm != "":
		drawText(fmt.Sprintf("%s  cmp %d  swp %d  wr %d  %v",
			last.Algorithm,
			last.Stats.Comparisons,
			last.Stats.Swaps,
			last.Stats.Writes,
			last.Elapsed.Round(time.Millisecond)), 20, 20, 20, ColText)
	}

	if a.lastErr != nil {
		drawText(a.lastErr.Error(), 20, 46, 16, rl.Red)
	}
	if a.ToneHz > 0 {
		drawText(fmt.Sprintf("tone %.0f Hz", a.ToneHz), layout.Width-140, 20, 16, ColTextDim)
	}

	drawText("[1] INS  [2] MERGE  [3] QUICK  [4] HEAP  [5] SEL  [6] BUBBLE  [SPACE] SHUFFLE  [ENTER] REDRAW  [ESC] QUIT", 20, 74, 14, ColTextDim)
}

func drawText(text string, x, y int32, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}
