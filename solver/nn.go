// Package solver — nearest-neighbor construction.
//
// The greedy tour is both a standalone heuristic and the seed for k-opt
// and simulated annealing. It is fully deterministic: ties are broken by
// the iteration order of the not-yet-visited set, which is the insertion
// order of the original node indices (first encountered minimum wins).
package solver

import (
	"context"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// SolveNearestNeighbor builds a single greedy tour starting at index 0,
// with no improvement phase.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Deterministic given a deterministic node order; no randomness.
//
// Complexity: O(n²) distance evaluations, O(n) space.
func SolveNearestNeighbor(ctx context.Context, g *planar.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	order := in.nearestNeighborOrder(0)

	return in.finish(order, started), nil
}

// nearestNeighborOrder runs the greedy construction from start and
// returns an open order visiting every node exactly once.
//
// The unvisited set is scanned in ascending original-index order, so the
// first minimum encountered wins ties — the documented tie-break rule.
//
// Complexity: O(n²) time, O(n) space.
func (in *instance) nearestNeighborOrder(start int) []int {
	var (
		n       = in.n
		order   = make([]int, 0, n)
		visited = make([]bool, n)
		cur     = start
	)
	order = append(order, cur)
	visited[cur] = true
	in.ctr.AddWrites(1)

	var (
		step, cand, next int
		d, best          float64
	)
	for step = 1; step < n; step++ {
		next = -1
		for cand = 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			d = in.dist(cur, cand)
			// Strict < keeps the first encountered minimum on ties.
			if next == -1 || d < best {
				next = cand
				best = d
			}
		}
		order = append(order, next)
		visited[next] = true
		in.ctr.AddWrites(1)
		cur = next
	}

	return order
}
