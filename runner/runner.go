package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// Sentinel errors — the complete settlement taxonomy. Wrapped variants
// carry the duration (timeout) or the underlying cause (worker); match
// with errors.Is.
var (
	// ErrTimeout indicates the configured timeout elapsed before the
	// execution context responded.
	ErrTimeout = errors.New("runner: timeout elapsed")

	// ErrCancelled indicates the caller cancelled the run, or a newer
	// run superseded it. Not surfaced through State().Err.
	ErrCancelled = errors.New("runner: run cancelled")

	// ErrWorker indicates the execution context failed: unknown
	// algorithm, invalid input, or a fault inside the heuristic.
	ErrWorker = errors.New("runner: worker failure")
)

// State is the externally visible runner snapshot.
//
// Lifecycle: idle → running (on Run) → idle with either an empty Err
// (success, cancellation) or a failure message (worker error, timeout).
// Exactly one State transition terminates each Run call.
type State struct {
	IsRunning bool
	CanCancel bool
	Err       string // empty when no user-visible error is pending
}

// settlement is the single outcome of one job.
type settlement struct {
	res solver.Result
	err error
}

// job is one isolated execution: a context handle for the worker
// goroutine, an optional timeout timer, and the write-once outcome cell.
// settle is idempotent — the first caller wins, later paths are no-ops.
type job struct {
	id     uuid.UUID
	cancel context.CancelFunc
	timer  *time.Timer
	once   sync.Once
	done   chan settlement // buffered(1); written exactly once
}

func newJob(cancel context.CancelFunc) *job {
	return &job{id: uuid.New(), cancel: cancel, done: make(chan settlement, 1)}
}

// settle records the job's outcome exactly once and tears the execution
// context down. Every completion path funnels through here; whichever
// fires first wins and the losers are suppressed.
func (j *job) settle(res solver.Result, err error) {
	j.once.Do(func() {
		j.cancel() // stop the worker at its next checkpoint
		j.done <- settlement{res: res, err: err}
	})
}

// Runner executes at most one heuristic job at a time.
// All methods are safe for concurrent use.
type Runner struct {
	reg *solver.Registry
	log *zap.Logger

	mu      sync.Mutex
	active  *job
	running bool
	errMsg  string
}

// New creates a Runner over the given registry. A nil logger is replaced
// by a no-op logger; a nil registry is replaced by the default catalogue.
func New(reg *solver.Registry, log *zap.Logger) *Runner {
	if reg == nil {
		reg = solver.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{reg: reg, log: log}
}

// Run executes the named heuristic on a deep copy of g with a deep copy
// of cfg, blocking until the job settles. A timeout > 0 arms a timer that
// settles the call with ErrTimeout on expiry; 0 (or negative) means no
// timeout ever fires.
//
// If a run is already in flight it is first settled with ErrCancelled —
// at most one job per Runner, last caller wins. The superseded caller's
// Run returns ErrCancelled; no stale result can arrive afterwards.
//
// Unknown algorithm names and nil graphs settle with ErrWorker; Run has
// no other preconditions.
func (r *Runner) Run(algorithm string, g *planar.Graph, cfg solver.Config, timeout time.Duration) (solver.Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	j := newJob(cancel)

	r.mu.Lock()
	if prev := r.active; prev != nil {
		// Last-caller-wins: the in-flight job is cancelled before the new
		// one starts; its waiter observes ErrCancelled.
		prev.settle(solver.Result{}, ErrCancelled)
	}
	r.active = j
	r.running = true
	r.errMsg = ""
	r.mu.Unlock()

	r.log.Debug("run started",
		zap.String("job", j.id.String()),
		zap.String("algorithm", algorithm),
		zap.Duration("timeout", timeout))

	// The worker receives value copies only: nothing it does can reach
	// caller-visible state, even while the caller keeps editing its graph.
	graphCopy := g.Clone()
	cfgCopy := cfg.Clone()

	go runWorker(ctx, j, r.reg, algorithm, graphCopy, cfgCopy)

	if timeout > 0 {
		j.timer = time.AfterFunc(timeout, func() {
			j.settle(solver.Result{}, fmt.Errorf("%w after %s", ErrTimeout, timeout))
		})
	}

	s := <-j.done
	r.finalize(j, s)

	return s.res, s.err
}

// finalize restores the idle state for j's settlement. Guarded against
// supersession: a newer job may already own the runner, in which case
// only this job's teardown happens.
func (r *Runner) finalize(j *job, s settlement) {
	if j.timer != nil {
		j.timer.Stop()
	}

	r.mu.Lock()
	if r.active == j {
		r.active = nil
		r.running = false
		// Cancellation is deliberately not a user-visible error.
		if s.err != nil && !errors.Is(s.err, ErrCancelled) {
			r.errMsg = s.err.Error()
		}
	}
	r.mu.Unlock()

	switch {
	case s.err == nil:
		r.log.Info("run settled",
			zap.String("job", j.id.String()),
			zap.Float64("distance", s.res.Perf.Distance),
			zap.Duration("runtime", s.res.Perf.Runtime))
	case errors.Is(s.err, ErrCancelled):
		r.log.Debug("run cancelled", zap.String("job", j.id.String()))
	default:
		r.log.Warn("run failed",
			zap.String("job", j.id.String()),
			zap.Error(s.err))
	}
}

// Cancel settles the pending run with ErrCancelled and tears down its
// timer and execution context. A Cancel with nothing running is a safe
// no-op. The error state stays empty on this path.
func (r *Runner) Cancel() {
	r.mu.Lock()
	j := r.active
	r.mu.Unlock()
	if j == nil {
		return
	}
	j.settle(solver.Result{}, ErrCancelled)
}

// ClearError resets only the error field, leaving run state untouched.
// Idempotent: clearing an already-clear error changes nothing.
func (r *Runner) ClearError() {
	r.mu.Lock()
	r.errMsg = ""
	r.mu.Unlock()
}

// State returns a consistent snapshot of the runner's visible state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return State{IsRunning: r.running, CanCancel: r.running, Err: r.errMsg}
}
