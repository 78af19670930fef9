// Package solver - RNG utilities shared by the stochastic heuristics.
//
// All randomness in the catalogue flows through this file:
//   - Determinism: same seed ⇒ identical tours across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Performance: O(1) helpers, O(n) shuffles, nothing hot-path hidden.
//
// Concurrency: math/rand.Rand is not goroutine-safe. Each solve call
// creates its own stream; never share one across runner instances.
package solver

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// Arbitrary but stable, to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a fresh
// 64-bit seed with a SplitMix64-style finalizer, so substreams derived
// for independent rounds (GRASP restarts) stay uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a.
// A nil rng selects the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomPerm returns a permutation of 0..n-1 drawn from rng.
//
// Complexity: O(n) time, O(n) space.
func randomPerm(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)

	return p
}
