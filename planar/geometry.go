// Package planar — Euclidean helpers shared by every heuristic.
//
// These are the only distance primitives in tourlab: all solver metrics are
// plain double-precision Euclidean distances, never snapped or rounded.
package planar

import "math"

// Distance returns the Euclidean distance between two nodes.
//
// Complexity: O(1).
func Distance(a, b Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TourLength sums consecutive distances over tour plus the closing edge
// back to the first node. Tours of length < 2 have length 0.
//
// The input may be open (n nodes) or already closed (first repeated last);
// a closed input is detected by ID and the duplicate closing hop is not
// double-counted.
//
// Complexity: O(n).
func TourLength(tour []Node) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}
	// Treat a closed tour as its open prefix.
	if tour[0].ID == tour[n-1].ID {
		n--
		if n < 2 {
			return 0
		}
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < n; i++ {
		sum += Distance(tour[i], tour[i+1])
	}
	sum += Distance(tour[n-1], tour[0]) // closing edge

	return sum
}

// TourEdges converts a closed tour into the displayable edge list.
// For fewer than two nodes the result is empty.
//
// Complexity: O(n).
func TourEdges(tour []Node) []Edge {
	if len(tour) < 2 {
		return nil
	}
	out := make([]Edge, 0, len(tour)-1)
	for i := 0; i+1 < len(tour); i++ {
		out = append(out, Edge{From: tour[i].ID, To: tour[i+1].ID})
	}

	return out
}
