// Package runner — the parallel "run all heuristics" pool.
//
// A Pool holds one independent Runner per catalogue entry, all built by
// the same factory. Each runner is its own state machine; cancelling the
// pool just iterates and cancels each member.
package runner

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// Outcome is one heuristic's terminal state within a pool run.
type Outcome struct {
	Algorithm string
	Result    solver.Result
	Err       error // nil on success; one of the runner sentinels otherwise
}

// Pool runs every registry entry concurrently on its own Runner.
type Pool struct {
	reg     *solver.Registry
	runners map[string]*Runner
	order   []string
}

// NewPool builds one Runner per registry entry via factory. A nil
// factory defaults to New(reg, nil) per entry.
func NewPool(reg *solver.Registry, factory func() *Runner) *Pool {
	if reg == nil {
		reg = solver.Default()
	}
	if factory == nil {
		factory = func() *Runner { return New(reg, nil) }
	}

	p := &Pool{reg: reg, runners: make(map[string]*Runner)}
	for _, key := range reg.Keys() {
		p.runners[key] = factory()
		p.order = append(p.order, key)
	}

	return p
}

// Runner exposes the pool member for one algorithm key (nil if unknown),
// so callers can watch individual states while a pool run is in flight.
func (p *Pool) Runner(key string) *Runner { return p.runners[key] }

// RunAll executes every heuristic concurrently against the same graph
// and per-algorithm configs (cfgs may be nil or sparse; missing entries
// run on declared defaults). Each runner receives its own graph copy via
// Run, so members cannot interfere. The returned outcomes preserve
// registry order. RunAll always returns a full outcome slice; per-member
// failures live in Outcome.Err, never in an error return.
func (p *Pool) RunAll(g *planar.Graph, cfgs map[string]solver.Config, timeout time.Duration) []Outcome {
	outcomes := make([]Outcome, len(p.order))

	var eg errgroup.Group
	for i, key := range p.order {
		i, key := i, key
		eg.Go(func() error {
			res, err := p.runners[key].Run(key, g, cfgs[key], timeout)
			outcomes[i] = Outcome{Algorithm: key, Result: res, Err: err}

			return nil
		})
	}
	// Members report through outcomes; the group only synchronizes.
	_ = eg.Wait()

	return outcomes
}

// CancelAll cancels every member's in-flight run, if any.
func (p *Pool) CancelAll() {
	for _, key := range p.order {
		p.runners[key].Cancel()
	}
}
