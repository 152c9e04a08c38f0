package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Metric observes every step of a run.
type Metric interface {
	Name() string
	Observe(s sorting.Step)
	Value() float64
	Reset()
}

// Steps counts every emitted step.
type Steps struct {
	count int
}

func NewSteps() *Steps { return &Steps{} }

func (m *Steps) Name() string           { return "steps" }
func (m *Steps) Observe(s sorting.Step) { m.count++ }
func (m *Steps) Value() float64         { return float64(m.count) }
func (m *Steps) Reset()                 { m.count = 0 }

// Tones counts the steps that played a tone.
type Tones struct {
	count int
}

func NewTones() *Tones { return &Tones{} }

func (m *Tones) Name() string { return "tones" }

func (m *Tones) Observe(s sorting.Step) {
	if s.Sound {
		m.count++
	}
}

func (m *Tones) Value() float64 { return float64(m.count) }
func (m *Tones) Reset()         { m.count = 0 }

// Coverage is the fraction of bar positions highlighted at least once.
type Coverage struct {
	seen []bool
	hits int
}

func NewCoverage(n int) *Coverage {
	return &Coverage{seen: make([]bool, n)}
}

func (m *Coverage) Name() string { return "coverage" }

func (m *Coverage) Observe(s sorting.Step) {
	if s.Index < 0 || s.Index >= len(m.seen) || m.seen[s.Index] {
		return
	}
	m.seen[s.Index] = true
	m.hits++
}

func (m *Coverage) Value() float64 {
	if len(m.seen) == 0 {
		return 0
	}
	return float64(m.hits) / float64(len(m.seen))
}

func (m *Coverage) Reset() {
	for i := range m.seen {
		m.seen[i] = false
	}
	m.hits = 0
}

// Contour records the index of every audible step, in order. Its value is
// the mean index, which tracks where along the array the tones sat.
type Contour struct {
	Indices []int
}

func NewContour() *Contour { return &Contour{} }

func (m *Contour) Name() string { return "contour" }

func (m *Contour) Observe(s sorting.Step) {
	if s.Sound {
		m.Indices = append(m.Indices, s.Index)
	}
}

func (m *Contour) Value() float64 {
	if len(m.Indices) == 0 {
		return 0
	}
	sum := 0
	for _, i := range m.Indices {
		sum += i
	}
	return float64(sum) / float64(len(m.Indices))
}

func (m *Contour) Reset() { m.Indices = m.Indices[:0] }

// Defaults returns the metrics recorded for every run.
func Defaults(n int) []Metric {
	return []Metric{NewSteps(), NewTones(), NewCoverage(n)}
}
