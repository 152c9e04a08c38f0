package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Renderer interface {
	Render(f sorting.Frame)
}

type Tone interface {
	Play(pitch float64)
}

// PitchForIndex maps a bar position to a playback rate. The mapping follows
// the index, not the bar height, so tones rise from left to right.
func PitchForIndex(index int) float64 {
	return 0.5 + float64(index)/100.0
}

type Config struct {
	Seed int64
	// RedrawDelay paces the redraw that follows a shuffle.
	RedrawDelay time.Duration
	// DebugDelay paces the redraw-only command.
	DebugDelay time.Duration
	// Sleep replaces time.Sleep when set.
	Sleep func(time.Duration)
}

func DefaultConfig() Config {
	return Config{
		Seed:        time.Now().UnixNano(),
		RedrawDelay: 10 * time.Millisecond,
		DebugDelay:  time.Millisecond,
	}
}

// Result summarizes the last completed run.
type Result struct {
	Algorithm string
	Stats     sorting.Stats
	Metrics   map[string]float64
	Elapsed   time.Duration
}

type Session struct {
	arr      *sorting.Array
	registry *experiment.Registry
	renderer Renderer
	tone     Tone
	rng      *rand.Rand
	cfg      Config
	metrics  []metrics.Metric
	last     Result
}

// New creates a session over a fresh array of sorting.Size bars.
// renderer and tone may be nil.
func New(registry *experiment.Registry, renderer Renderer, tone Tone, cfg Config) *Session {
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	return &Session{
		arr:      sorting.NewArray(sorting.Size),
		registry: registry,
		renderer: renderer,
		tone:     tone,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		cfg:      cfg,
		metrics:  make([]metrics.Metric, 0),
	}
}

func (s *Session) AddMetric(m metrics.Metric) { s.metrics = append(s.metrics, m) }

// Array exposes the live bar array. Callers must not write to it.
func (s *Session) Array() *sorting.Array { return s.arr }

func (s *Session) Last() Result { return s.last }

// Emit blocks for the step's delay, renders the array with the touched bar
// highlighted and, for audible steps, plays the tone for that position.
func (s *Session) Emit(step sorting.Step) {
	s.cfg.Sleep(step.Delay)

	for _, m := range s.metrics {
		m.Observe(step)
	}
	if s.renderer != nil {
		s.renderer.Render(s.arr.Snapshot(step.Index))
	}
	if step.Sound && s.tone != nil {
		s.tone.Play(PitchForIndex(step.Index))
	}
}

// Shuffle refills the array with random heights and redraws it.
func (s *Session) Shuffle() {
	s.arr.Shuffle(s.rng)
	s.Emit(sorting.Step{Index: 0, Delay: s.cfg.RedrawDelay})
}

// Redraw renders the current state without touching it.
func (s *Session) Redraw() {
	s.Emit(sorting.Step{Index: 0, Delay: s.cfg.DebugDelay})
}

// Run shuffles, sorts with the named algorithm, marks the array sorted and
// renders it once more. It cannot be interrupted.
func (s *Session) Run(name string) (Result, error) {
	alg, entry, err := s.registry.Get(name)
	if err != nil {
		return Result{}, err
	}

	s.Shuffle()
	for _, m := range s.metrics {
		m.Reset()
	}

	start := time.Now()
	alg.Sort(s.arr, s)
	elapsed := time.Since(start)

	if !s.arr.IsNonDecreasing() {
		return Result{}, fmt.Errorf("engine: %s left the array unsorted", name)
	}

	result := Result{
		Algorithm: alg.Name(),
		Stats:     s.arr.Stats,
		Metrics:   make(map[string]float64, len(s.metrics)),
		Elapsed:   elapsed,
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	s.arr.Sorted = true
	s.Emit(sorting.Step{Index: 0, Delay: entry.FinalDelay})

	s.last = result
	slog.Debug("run complete",
		"algorithm", result.Algorithm,
		"comparisons", result.Stats.Comparisons,
		"swaps", result.Stats.Swaps,
		"elapsed", elapsed)
	return result, nil
}

// Dispatch executes one command and reports whether the frontend should close.
func (s *Session) Dispatch(cmd Command) (bool, error) {
	switch cmd.Op {
	case OpRun:
		_, err := s.Run(cmd.Algorithm)
		return false, err
	case OpShuffle:
		s.Shuffle()
	case OpRedraw:
		s.Redraw()
	case OpClose:
		return true, nil
	}
	return false, nil
}
