// Package solver — GRASP (greedy randomized adaptive search procedure).
//
// Each round builds a tour by greedy-randomized construction and polishes
// it with a bounded full 2-opt; the global best across rounds wins.
//
// Construction keeps a Restricted Candidate List (RCL): from the current
// node, every unvisited node whose distance lies within
// alpha × (maxDist − minDist) of the minimum joins the list, and the next
// node is drawn uniformly from it. alpha=0 degenerates to pure greed,
// alpha=1 to a uniform pick among all candidates.
package solver

import (
	"context"
	"math/rand"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// GRASPOptions configures SolveGRASP.
type GRASPOptions struct {
	// Alpha is the RCL tolerance in [0,1]. Default 0.3.
	Alpha float64

	// Iterations is the number of construction+search rounds. Default 100.
	Iterations int

	// LocalSearchMaxIterations bounds accepted 2-opt moves per round.
	// Default 1000.
	LocalSearchMaxIterations int

	// Seed drives construction randomness; 0 selects the default stream.
	Seed int64
}

// DefaultGRASPOptions returns the catalogue defaults for SolveGRASP.
func DefaultGRASPOptions() GRASPOptions {
	return GRASPOptions{
		Alpha:                    0.3,
		Iterations:               100,
		LocalSearchMaxIterations: 1000,
	}
}

// SolveGRASP runs the rounds described in the package comment.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Stochastic; reproducible per Seed. Each round starts construction
//     at a node drawn from the round's stream (diversification).
//
// Complexity: O(iterations · (n² + localSearch)) time, O(n) space.
func SolveGRASP(ctx context.Context, g *planar.Graph, opts GRASPOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	if opts.Iterations < 1 {
		opts.Iterations = DefaultGRASPOptions().Iterations
	}
	if opts.Alpha < 0 {
		opts.Alpha = 0
	}
	if opts.Alpha > 1 {
		opts.Alpha = 1
	}

	var (
		bestOrder []int
		bestLen   float64
		round     int
	)
	for round = 0; round < opts.Iterations; round++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// Each round owns an uncorrelated substream, so round r is
		// reproducible on its own regardless of how earlier rounds drew.
		rng := rngFromSeed(deriveSeed(opts.Seed, uint64(round)))
		order := in.graspConstruct(rng.Intn(in.n), opts.Alpha, rng)
		length := in.orderLength(order)

		length, err := in.twoOptImprove(ctx, order, length, opts.LocalSearchMaxIterations)
		if err != nil {
			return Result{}, err
		}

		if bestOrder == nil || length < bestLen-DefaultEps {
			bestOrder = order
			bestLen = length
		}
	}

	return in.finish(bestOrder, started), nil
}

// graspConstruct builds one greedy-randomized order from start.
//
// Complexity: O(n²) time, O(n) space.
func (in *instance) graspConstruct(start int, alpha float64, rng *rand.Rand) []int {
	var (
		n       = in.n
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		dists   = make([]float64, n)
		rcl     = make([]int, 0, n)
		cur     = start
	)
	order = append(order, cur)
	visited[cur] = true
	in.ctr.AddWrites(1)

	for len(order) < n {
		// Distance spread over the unvisited set.
		minD, maxD := -1.0, 0.0
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			dists[j] = in.dist(cur, j)
			if minD < 0 || dists[j] < minD {
				minD = dists[j]
			}
			if dists[j] > maxD {
				maxD = dists[j]
			}
		}

		// RCL: everything within alpha·(max−min) of the minimum.
		threshold := minD + alpha*(maxD-minD)
		rcl = rcl[:0]
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if dists[j] <= threshold+DefaultEps {
				rcl = append(rcl, j)
			}
		}

		next := rcl[rng.Intn(len(rcl))]
		order = append(order, next)
		visited[next] = true
		in.ctr.AddWrites(1)
		cur = next
	}

	return order
}
