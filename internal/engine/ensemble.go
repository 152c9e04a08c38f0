package engine

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/metrics"
)

// Ensemble runs a list of algorithms over consecutive seeds without pacing.
// Each seed gets its own goroutine and sessions, so every algorithm sees
// the same shuffle for a given seed.
type Ensemble struct {
	Runs      int
	SeedStart int64
	// Metrics builds fresh observers for each session; nil records none.
	Metrics func() []metrics.Metric
}

// Trial is one algorithm's run on one seed.
type Trial struct {
	Seed   int64
	Result Result
}

// Run returns the trials ordered by seed, then by the order of names.
func (e *Ensemble) Run(ctx context.Context, names []string) ([]Trial, error) {
	trials := make([]Trial, e.Runs*len(names))
	errs := make([]error, e.Runs)

	var wg sync.WaitGroup
	for i := 0; i < e.Runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			seed := e.SeedStart + int64(idx)
			registry := experiment.NewRegistry(experiment.Pacing{})
			for j, name := range names {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}

				s := New(registry, nil, nil, Config{Seed: seed, Sleep: func(time.Duration) {}})
				if e.Metrics != nil {
					for _, m := range e.Metrics() {
						s.AddMetric(m)
					}
				}
				result, err := s.Run(name)
				if err != nil {
					errs[idx] = err
					return
				}
				trials[idx*len(names)+j] = Trial{Seed: seed, Result: result}
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return trials, nil
}
