// Package solver — simulated annealing.
//
// SolveAnneal starts from the nearest-neighbor tour and walks random
// 2-opt moves: an improving move is always taken, a worsening move is
// taken with probability exp(−Δ/T). Temperature cools geometrically
// (T ← T·coolingRate) each iteration until minTemperature or the
// iteration budget. The best-seen tour is tracked separately from the
// current (possibly worse) tour and is what gets returned.
package solver

import (
	"context"
	"math"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// annealCtxCheckMask throttles context polling to every 2048 iterations.
const annealCtxCheckMask = 2047

// AnnealOptions configures SolveAnneal.
type AnnealOptions struct {
	// InitialTemperature is the starting T. Default 10000.
	InitialTemperature float64

	// CoolingRate is the geometric decay factor per iteration, in (0,1).
	// Default 0.995.
	CoolingRate float64

	// MinTemperature stops the walk once T falls below it. Default 0.1.
	MinTemperature float64

	// MaxIterations bounds the walk regardless of temperature.
	// Default 100000.
	MaxIterations int

	// Seed drives the move stream; 0 selects the fixed default stream.
	Seed int64
}

// DefaultAnnealOptions returns the catalogue defaults for SolveAnneal.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemperature: 10000,
		CoolingRate:        0.995,
		MinTemperature:     0.1,
		MaxIterations:      100000,
	}
}

// SolveAnneal runs the annealing walk described in the package comment.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Stochastic; reproducible per Seed.
//
// Complexity: O(maxIterations) move evaluations, O(n) space.
func SolveAnneal(ctx context.Context, g *planar.Graph, opts AnnealOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	var (
		n       = in.n
		rng     = rngFromSeed(opts.Seed)
		cur     = in.nearestNeighborOrder(0)
		curLen  = in.orderLength(cur)
		best    = copyOrder(cur)
		bestLen = curLen
		temp    = opts.InitialTemperature
		iter    int
		i, k    int
		delta   float64
	)
	// Degenerate knobs fall back to a pure descent with the default budget.
	if temp <= 0 {
		temp = DefaultAnnealOptions().InitialTemperature
	}
	if opts.CoolingRate <= 0 || opts.CoolingRate >= 1 {
		opts.CoolingRate = DefaultAnnealOptions().CoolingRate
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultAnnealOptions().MaxIterations
	}

	for iter = 0; iter < opts.MaxIterations && temp > opts.MinTemperature; iter++ {
		if iter&annealCtxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		// Random candidate cut with position 0 anchored: 1 ≤ i < k ≤ n−1.
		i = 1 + rng.Intn(n-2)
		k = i + 1 + rng.Intn(n-1-i)

		delta = in.twoOptDelta(cur, i, k)
		if delta < -DefaultEps || rng.Float64() < math.Exp(-delta/temp) {
			reverseSegmentInPlace(cur, i, k, in.ctr)
			curLen += delta
			if curLen < bestLen-DefaultEps {
				assignOrder(best, cur, in.ctr)
				bestLen = curLen
			}
		}

		temp *= opts.CoolingRate
	}

	return in.finish(best, started), nil
}
