// Package runner executes one heuristic invocation as an isolated,
// cancellable, timeout-bounded unit of work and produces exactly one
// settlement per Run call.
//
// A Runner owns at most one job at a time, with last-caller-wins
// semantics: starting a new run first cancels the one in flight, so no
// stale result can ever settle after a newer job has begun. Each job gets
// its own execution context — a goroutine fed deep, non-aliased copies of
// the graph and config, cancelled through its context at the heuristics'
// loop-boundary checkpoints — and a single-settlement cell guarded by
// sync.Once: whichever of {success, worker error, timeout, cancellation}
// fires first performs teardown, and every later path is a no-op.
//
// The error taxonomy is exactly three sentinels:
//
//   - ErrTimeout    — the configured timeout elapsed first (the wrapped
//     message carries the configured duration).
//   - ErrCancelled  — explicit Cancel or supersession by a newer Run.
//     Deliberately not a user-visible failure: State().Err stays empty.
//   - ErrWorker     — unknown algorithm, nil graph, or a fault inside the
//     heuristic (panics are recovered and reported, never propagated).
//
// The runner never retries; a retry is an explicit new Run by the caller.
// Every terminal path restores the not-running state, so a UI reading
// State is never left stuck.
//
// For the parallel "run all heuristics" mode, Pool builds one independent
// Runner per catalogue entry from a shared factory; CancelAll iterates.
package runner
