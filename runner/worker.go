// Package runner — the isolated execution context.
//
// runWorker is the goroutine body behind every job. It mirrors the
// request/response envelope of the execution boundary: the request is
// (algorithm key, graph copy, config copy), the response is either a
// Result or an error string — nothing else crosses.
package runner

import (
	"context"
	"fmt"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// runWorker looks the algorithm up, executes it, and settles the job.
// Faults inside the heuristic are recovered and reported as ErrWorker —
// a worker can fail its job but never crash the runner. A cancelled
// context settles as ErrCancelled (normally redundant: the settling
// path that cancelled the context won the race already).
func runWorker(ctx context.Context, j *job, reg *solver.Registry, algorithm string, g *planar.Graph, cfg solver.Config) {
	defer func() {
		if rec := recover(); rec != nil {
			j.settle(solver.Result{}, fmt.Errorf("%w: panic: %v", ErrWorker, rec))
		}
	}()

	if g == nil {
		j.settle(solver.Result{}, fmt.Errorf("%w: %w", ErrWorker, solver.ErrNilGraph))

		return
	}

	desc, ok := reg.Lookup(algorithm)
	if !ok {
		j.settle(solver.Result{}, fmt.Errorf("%w: %w: %s", ErrWorker, solver.ErrAlgorithmNotFound, algorithm))

		return
	}

	res, err := desc.Solve(ctx, g, cfg)
	switch {
	case err == nil:
		j.settle(res, nil)
	case ctx.Err() != nil:
		// The heuristic observed cancellation at a checkpoint. Whichever
		// path cancelled the context has usually settled already, making
		// this a no-op.
		j.settle(solver.Result{}, ErrCancelled)
	default:
		j.settle(solver.Result{}, fmt.Errorf("%w: %v", ErrWorker, err))
	}
}
