// Package solver — k-opt local search (k = 2…5).
//
// SolveKOpt starts from the nearest-neighbor tour and improves it:
//
//   - k=2 — full first-improvement 2-opt to a local optimum.
//   - k=3 — full 3-opt: for every cut triple, all 7 non-identity
//     reconnections of the three removed edges are tried; instances with
//     n < 6 fall back to 2-opt (no room for three disjoint cuts).
//   - k>3 — generalized k-opt on top of a 3-opt base: segment-boundary
//     combinations are enumerated exhaustively when ≤ maxBoundaryCombos,
//     otherwise uniformly sub-sampled to that cap with a deterministic
//     stream; for each combination all segment permutations × reversal
//     masks are tried, capped at maxRearrangements.
//
// The whole family is deterministic: no randomness in tie-breaking or
// search order (the sub-sampling stream is fixed-seed).
package solver

import (
	"context"
	"math/rand"
	"time"

	"github.com/vkarel/tourlab/planar"
)

const (
	// maxBoundaryCombos caps how many k-cut boundary combinations a
	// generalized k-opt pass examines.
	maxBoundaryCombos = 1000

	// maxRearrangements caps segment permutation × reversal variants
	// tried per boundary combination.
	maxRearrangements = 100

	// threeOptMinNodes is the smallest instance with three disjoint cuts.
	threeOptMinNodes = 6
)

// KOptOptions configures SolveKOpt.
type KOptOptions struct {
	// K is the neighborhood order, clamped to [2..5] at the registry
	// boundary. Default 2.
	K int
}

// DefaultKOptOptions returns the catalogue defaults for SolveKOpt.
func DefaultKOptOptions() KOptOptions { return KOptOptions{K: 2} }

// SolveKOpt runs nearest-neighbor construction followed by the k-opt
// local search selected by opts.K.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Deterministic for every K.
//
// Complexity: O(iter·n²) for k=2, O(iter·n³) for k=3; the k>3 pass is
// bounded by maxBoundaryCombos × maxRearrangements × O(n).
func SolveKOpt(ctx context.Context, g *planar.Graph, opts KOptOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	k := opts.K
	if k < 2 {
		k = 2
	}

	order := in.nearestNeighborOrder(0)
	length := in.orderLength(order)

	var err error
	switch {
	case k == 2 || (k == 3 && in.n < threeOptMinNodes):
		_, err = in.twoOptImprove(ctx, order, length, 0)
	case k == 3:
		_, err = in.threeOptImprove(ctx, order, length)
	default:
		// Generalized k-opt sits on a full 3-opt base (2-opt base when the
		// instance is too small for three cuts). The tracked length feeds
		// the next phase; the final distance is recomputed by finish.
		if in.n < threeOptMinNodes {
			length, err = in.twoOptImprove(ctx, order, length, 0)
		} else {
			length, err = in.threeOptImprove(ctx, order, length)
		}
		if err == nil {
			_, err = in.kOptPass(ctx, order, length, k)
		}
	}
	if err != nil {
		return Result{}, err
	}

	return in.finish(order, started), nil
}

// threeOptImprove runs first-improvement 3-opt sweeps on order until a
// local optimum or context expiry. For each cut triple (i,j,k) the three
// removed edges are (A,B), (C,D), (E,F) with
//
//	A=O[i], B=O[i+1], C=O[j], D=O[j+1], E=O[k], F=O[(k+1) mod n],
//
// and all 7 non-identity reconnections are evaluated by Δ-cost before any
// slice is rebuilt (the rebuild is O(n), paid only on acceptance).
//
// Complexity: O(sweeps·n³) candidate checks.
func (in *instance) threeOptImprove(ctx context.Context, order []int, length float64) (float64, error) {
	n := len(order)
	if n < threeOptMinNodes {
		return in.twoOptImprove(ctx, order, length, 0)
	}

	var (
		i, j, k    int
		variant    int
		step       uint64
		base, cost float64
		delta      float64
		bestDelta  float64
		bestVar    int
	)
	for {
		improved := false

		for i = 0; i <= n-3 && !improved; i++ {
			for j = i + 1; j <= n-2 && !improved; j++ {
				for k = j + 1; k <= n-1; k++ {
					step++
					if step&twoOptCtxCheckMask == 0 {
						if err := ctx.Err(); err != nil {
							return 0, err
						}
					}

					base = in.threeOptRemoved(order, i, j, k)
					bestDelta = -DefaultEps
					bestVar = 0
					for variant = 1; variant <= 7; variant++ {
						cost = in.threeOptAdded(order, i, j, k, variant)
						delta = cost - base
						if delta < bestDelta {
							bestDelta = delta
							bestVar = variant
						}
					}
					if bestVar == 0 {
						continue
					}

					in.applyThreeOpt(order, i, j, k, bestVar)
					length += bestDelta
					improved = true
					break
				}
			}
		}

		if !improved {
			return length, nil
		}
	}
}

// threeOptRemoved sums the three edges a cut triple removes.
func (in *instance) threeOptRemoved(order []int, i, j, k int) float64 {
	n := len(order)
	a, b := order[i], order[i+1]
	c, d := order[j], order[j+1]
	e, f := order[k], order[(k+1)%n]

	return in.dist(a, b) + in.dist(c, d) + in.dist(e, f)
}

// threeOptAdded sums the three replacement edges of one of the 7
// reconnection variants. With S1=O[i+1..j], S2=O[j+1..k]:
//
//	1: rev(S1)            → (A,C)(B,D)(E,F)
//	2: rev(S2)            → (A,B)(C,E)(D,F)
//	3: rev(S1), rev(S2)   → (A,C)(B,E)(D,F)
//	4: S2 S1              → (A,D)(E,B)(C,F)
//	5: S2 rev(S1)         → (A,D)(E,C)(B,F)
//	6: rev(S2) S1         → (A,E)(D,B)(C,F)
//	7: rev(S2) rev(S1)    → (A,E)(D,C)(B,F)
func (in *instance) threeOptAdded(order []int, i, j, k, variant int) float64 {
	n := len(order)
	a, b := order[i], order[i+1]
	c, d := order[j], order[j+1]
	e, f := order[k], order[(k+1)%n]

	switch variant {
	case 1:
		return in.dist(a, c) + in.dist(b, d) + in.dist(e, f)
	case 2:
		return in.dist(a, b) + in.dist(c, e) + in.dist(d, f)
	case 3:
		return in.dist(a, c) + in.dist(b, e) + in.dist(d, f)
	case 4:
		return in.dist(a, d) + in.dist(e, b) + in.dist(c, f)
	case 5:
		return in.dist(a, d) + in.dist(e, c) + in.dist(b, f)
	case 6:
		return in.dist(a, e) + in.dist(d, b) + in.dist(c, f)
	default: // 7
		return in.dist(a, e) + in.dist(d, c) + in.dist(b, f)
	}
}

// applyThreeOpt rewrites order in place for the chosen variant.
// The rebuild allocates two scratch segments; O(n) per accepted move.
func (in *instance) applyThreeOpt(order []int, i, j, k, variant int) {
	s1 := copyOrder(order[i+1 : j+1])
	s2 := copyOrder(order[j+1 : k+1])

	switch variant {
	case 1:
		reverseAll(s1)
		writeSegments(order, i+1, in.ctr, s1, s2)
	case 2:
		reverseAll(s2)
		writeSegments(order, i+1, in.ctr, s1, s2)
	case 3:
		reverseAll(s1)
		reverseAll(s2)
		writeSegments(order, i+1, in.ctr, s1, s2)
	case 4:
		writeSegments(order, i+1, in.ctr, s2, s1)
	case 5:
		reverseAll(s1)
		writeSegments(order, i+1, in.ctr, s2, s1)
	case 6:
		reverseAll(s2)
		writeSegments(order, i+1, in.ctr, s2, s1)
	default: // 7
		reverseAll(s1)
		reverseAll(s2)
		writeSegments(order, i+1, in.ctr, s2, s1)
	}
}

// reverseAll reverses a whole scratch segment (no counter traffic: scratch
// buffers are bookkeeping, not tour state).
func reverseAll(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// writeSegments copies the given segments back into order starting at pos
// and books the writes.
func writeSegments(order []int, pos int, ctr *Counter, segs ...[]int) {
	for _, s := range segs {
		copy(order[pos:pos+len(s)], s)
		ctr.AddWrites(int64(len(s)))
		pos += len(s)
	}
}

// kOptPass runs one generalized k-opt pass over sampled boundary
// combinations. Each combination of k cut positions splits the cycle
// (anchored at position 0) into k segments that are re-glued under up to
// maxRearrangements permutation/reversal variants; the best strictly
// improving candidate over the whole pass is kept.
//
// Determinism: exhaustive enumeration when the combination count fits the
// cap, otherwise a fixed-seed uniform sample.
func (in *instance) kOptPass(ctx context.Context, order []int, length float64, k int) (float64, error) {
	n := len(order)
	if n < k+1 || k < 4 {
		return length, nil
	}

	combos := boundaryCombos(n, k)

	var (
		bestOrder  []int
		bestLength = length
		scratch    = make([]int, 0, n)
		cand       float64
	)
	for ci, cuts := range combos {
		if ci&63 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		segs := splitSegments(order, cuts)
		variants := rearrangements(len(segs))
		for _, v := range variants {
			scratch = glueSegments(scratch[:0], segs, v)
			cand = in.orderLength(scratch)
			if cand < bestLength-DefaultEps {
				bestLength = cand
				bestOrder = copyOrder(scratch)
			}
		}
	}

	if bestOrder != nil {
		assignOrder(order, bestOrder, in.ctr)
		return bestLength, nil
	}

	return length, nil
}

// boundaryCombos returns combinations of k cut positions drawn from
// [1..n-1] (position 0 stays the anchor). Exhaustive when C(n-1,k) ≤
// maxBoundaryCombos, otherwise a deterministic uniform sample of that size.
func boundaryCombos(n, k int) [][]int {
	total := binomial(n-1, k)
	if total >= 0 && total <= maxBoundaryCombos {
		return enumerateCombos(n, k)
	}

	rng := rngFromSeed(0) // fixed stream keeps the pass deterministic
	out := make([][]int, 0, maxBoundaryCombos)
	for len(out) < maxBoundaryCombos {
		out = append(out, sampleCombo(n, k, rng))
	}

	return out
}

// binomial computes C(m,k), returning -1 on overflow past the cap range.
func binomial(m, k int) int {
	if k < 0 || k > m {
		return 0
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (m - k + i) / i
		if res > maxBoundaryCombos*16 {
			return -1 // far past the cap; exact value irrelevant
		}
	}

	return res
}

// enumerateCombos lists all ascending k-combinations of [1..n-1].
func enumerateCombos(n, k int) [][]int {
	var (
		out  [][]int
		cur  = make([]int, k)
		rec  func(start, depth int)
		last = n - 1
	)
	rec = func(start, depth int) {
		if depth == k {
			out = append(out, copyOrder(cur))

			return
		}
		for v := start; v <= last-(k-depth-1); v++ {
			cur[depth] = v
			rec(v+1, depth+1)
		}
	}
	rec(1, 0)

	return out
}

// sampleCombo draws one ascending k-combination of [1..n-1] uniformly.
func sampleCombo(n, k int, rng *rand.Rand) []int {
	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		v := 1 + rng.Intn(n-1)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sortInts(out)

	return out
}

// sortInts is a small insertion sort: combination sizes are ≤ 5.
func sortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}

// splitSegments cuts the open order at the given ascending positions.
// The anchored prefix order[0..cuts[0]-1] is segment 0; it is never moved
// (the cycle is rotation-invariant, so fixing it loses nothing).
func splitSegments(order []int, cuts []int) [][]int {
	segs := make([][]int, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		segs = append(segs, order[prev:c])
		prev = c
	}
	segs = append(segs, order[prev:])

	return segs
}

// rearrangement describes one way to re-glue segments: a permutation of
// the movable segments and a reversal bitmask over them.
type rearrangement struct {
	perm []int
	mask int
}

// rearrangements enumerates permutation × reversal variants for the
// movable segments (all but the anchored segment 0), skipping the
// identity and capping the list at maxRearrangements. Deterministic
// lexicographic order.
func rearrangements(segCount int) []rearrangement {
	movable := segCount - 1
	perms := permutations(movable)

	out := make([]rearrangement, 0, maxRearrangements)
	for _, p := range perms {
		for mask := 0; mask < 1<<movable; mask++ {
			if mask == 0 && isIdentity(p) {
				continue // the unchanged tour
			}
			out = append(out, rearrangement{perm: p, mask: mask})
			if len(out) >= maxRearrangements {
				return out
			}
		}
	}

	return out
}

// permutations lists all permutations of [0..m-1] in lexicographic order.
// m ≤ 4 in practice (k ≤ 5 ⇒ at most 4 movable segments).
func permutations(m int) [][]int {
	base := identityOrder(m)
	var (
		out [][]int
		rec func(depth int)
	)
	rec = func(depth int) {
		if depth == m {
			out = append(out, copyOrder(base))

			return
		}
		for i := depth; i < m; i++ {
			base[depth], base[i] = base[i], base[depth]
			rec(depth + 1)
			base[depth], base[i] = base[i], base[depth]
		}
	}
	rec(0)

	return out
}

func isIdentity(p []int) bool {
	for i := range p {
		if p[i] != i {
			return false
		}
	}

	return true
}

// glueSegments builds a candidate order: anchored segment 0, then the
// movable segments in permuted order, each reversed when its mask bit is
// set. dst is reused across candidates to limit allocation churn.
func glueSegments(dst []int, segs [][]int, r rearrangement) []int {
	dst = append(dst, segs[0]...)
	for pos, idx := range r.perm {
		s := segs[idx+1]
		if r.mask&(1<<pos) != 0 {
			for i := len(s) - 1; i >= 0; i-- {
				dst = append(dst, s[i])
			}
		} else {
			dst = append(dst, s...)
		}
	}

	return dst
}
