package planar

import (
	"math/rand"
	"strconv"
)

// Random generates a graph of n nodes uniformly placed on the
// [0,width)×[0,height) rectangle. Node IDs are "n0".."n<n-1>".
//
// The same seed always yields the same instance; seed 0 selects a fixed
// default stream so zero-value callers stay reproducible.
//
// Complexity: O(n).
func Random(n int, width, height float64, seed int64) *Graph {
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	g := NewGraph()
	for i := 0; i < n; i++ {
		// AddNode cannot fail here: IDs are unique and non-empty by construction.
		_ = g.AddNode(Node{
			ID: "n" + strconv.Itoa(i),
			X:  rng.Float64() * width,
			Y:  rng.Float64() * height,
		})
	}

	return g
}
