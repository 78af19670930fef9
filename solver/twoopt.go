// Package solver — the 2-opt local-search engine.
//
// twoOptImprove performs deterministic first-improvement 2-opt on an open
// index order with position 0 fixed as the rotation anchor:
//
//	Δ = d(a,c) + d(b,e) − d(a,b) − d(c,e)
//
// with a=O[i−1], b=O[i], c=O[k], e=O[(k+1) mod n], applied by reversing
// the segment O[i..k]. A move is accepted only when Δ < −DefaultEps.
//
// The engine is shared by SolveKOpt (k=2 and as polish), simulated
// annealing (single-move deltas), and GRASP (bounded sweeps).
package solver

import "context"

// twoOptCtxCheckMask throttles context polling inside the scan loop to
// every 2048 candidate checks.
const twoOptCtxCheckMask = 2047

// twoOptImprove improves order in place until a local optimum, an
// accepted-move budget (0 ⇒ unlimited), or context expiry.
// Returns the improved closed-cycle length.
//
// Contract: order is an open permutation with len ≥ 3; length is its
// current closed-cycle length.
//
// Complexity: O(sweeps·n²) candidate checks; O(n) per accepted move.
func (in *instance) twoOptImprove(ctx context.Context, order []int, length float64, maxMoves int) (float64, error) {
	n := len(order)
	if n < 3 {
		return length, nil
	}

	var (
		accepted   int
		step       uint64
		i, k       int
		a, b, c, e int // boundary endpoints around the (i,k) cut
		delta      float64
	)
	for {
		improved := false

		// Scan candidate pairs with position 0 anchored: 1 ≤ i < k ≤ n−1.
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				step++
				if step&twoOptCtxCheckMask == 0 {
					if err := ctx.Err(); err != nil {
						return 0, err
					}
				}

				a = order[i-1]
				b = order[i]
				c = order[k]
				e = order[(k+1)%n]

				delta = (in.dist(a, c) + in.dist(b, e)) - (in.dist(a, b) + in.dist(c, e))
				if delta >= -DefaultEps {
					continue
				}

				reverseSegmentInPlace(order, i, k, in.ctr)
				length += delta
				accepted++
				improved = true

				if maxMoves > 0 && accepted >= maxMoves {
					return length, nil
				}
				// First-improvement policy: restart the scan.
				break
			}
		}

		if !improved {
			return length, nil // local optimum
		}
	}
}

// twoOptDelta evaluates a single candidate move (reverse order[i..k])
// without applying it. Used by simulated annealing, where acceptance is
// probabilistic rather than strictly improving.
//
// Contract: 1 ≤ i < k ≤ n−1 with position 0 anchored.
//
// Complexity: O(1).
func (in *instance) twoOptDelta(order []int, i, k int) float64 {
	n := len(order)
	a := order[i-1]
	b := order[i]
	c := order[k]
	e := order[(k+1)%n]

	return (in.dist(a, c) + in.dist(b, e)) - (in.dist(a, b) + in.dist(c, e))
}
