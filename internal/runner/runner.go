package runner

import (
	"context"
	"sync"
	"time"

	"github.com/3ajes/URL/internal/engine"
	"github.com/3ajes/URL/internal/model"
)

// Config holds settings for the runner.
type Config struct {
	Threads int
}

// Runner fans a list of inputs out over a worker pool. Scans are pure and
// independent, so workers share nothing beyond the jobs channel.
type Runner struct {
	cfg Config
	eng *engine.Engine
}

// New creates a new Runner.
func New(cfg Config, eng *engine.Engine) *Runner {
	return &Runner{cfg: cfg, eng: eng}
}

// Run scans every input and returns one report per input, in input order.
func (r *Runner) Run(ctx context.Context, inputs []string) []model.Report {
	out := make([]model.Report, len(inputs))
	mu := &sync.Mutex{}

	type job struct {
		idx int
		raw string
	}

	jobs := make(chan job)
	wg := sync.WaitGroup{}
	for i := 0; i < r.cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				started := time.Now()
				res, events := r.eng.Scan(jb.raw)
				rep := model.Report{
					Result:     res,
					Trace:      events,
					StartedAt:  started,
					DurationMs: time.Since(started).Milliseconds(),
				}
				mu.Lock()
				out[jb.idx] = rep
				mu.Unlock()
			}
		}()
	}

	go func() {
		for i, raw := range inputs {
			if ctx.Err() != nil {
				break
			}
			jobs <- job{idx: i, raw: raw}
		}
		close(jobs)
	}()

	wg.Wait()
	return out
}
