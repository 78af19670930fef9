// Package solver — exhaustive brute-force baseline.
//
// SolveNaive enumerates all n! orderings without fixing a start vertex and
// keeps the shortest closed cycle. The search is intentionally kept as a
// full n! scan (no rotational/reflective reduction) so its output stays
// bit-compatible with the comparison baseline; it is meant for n ≲ 8 only.
package solver

import (
	"context"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// bruteCtxCheckMask throttles context polling to every 4096 permutations,
// keeping cancellation latency bounded without taxing the tight loop.
const bruteCtxCheckMask = 4095

// SolveNaive finds the exact optimum by exhaustive permutation search.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Deterministic; factorial time — callers gate input size.
//
// Complexity: O(n·n!) time, O(n) space (Heap's algorithm, in-place).
func SolveNaive(ctx context.Context, g *planar.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	var (
		n     = in.n
		cur   = identityOrder(n)
		best  = copyOrder(cur)
		bestL = in.orderLength(cur)
		// Heap's algorithm state: c[i] counts sub-permutations at depth i.
		c       = make([]int, n)
		i       int
		seen    uint64 // permutations generated, for ctx throttling
		curL    float64
		ctxErr  error
		doCheck = func() error {
			seen++
			if seen&bruteCtxCheckMask != 0 {
				return nil
			}

			return ctx.Err()
		}
	)

	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				cur[0], cur[i] = cur[i], cur[0]
			} else {
				cur[c[i]], cur[i] = cur[i], cur[c[i]]
			}
			in.ctr.AddWrites(2)

			curL = in.orderLength(cur)
			if curL < bestL-DefaultEps {
				assignOrder(best, cur, in.ctr)
				bestL = curL
			}

			if ctxErr = doCheck(); ctxErr != nil {
				return Result{}, ctxErr
			}

			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return in.finish(best, started), nil
}
