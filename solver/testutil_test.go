// Package solver_test provides lightweight helpers shared across the
// *_test.go files in this package: graph builders for canonical planar
// instances and closed-tour validation against the public contract.
package solver_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsLoose is the tolerance for floating-point tour-length comparisons.
	epsLoose = 1e-9

	// unitSquarePerimeter is the optimal cycle over the four unit-square
	// corners.
	unitSquarePerimeter = 4.0
)

// mustGraph builds a graph from (x,y) points with IDs p0, p1, ….
func mustGraph(t *testing.T, pts [][2]float64) *planar.Graph {
	t.Helper()
	g := planar.NewGraph()
	for i, p := range pts {
		if err := g.AddNode(planar.Node{ID: nodeID(i), X: p[0], Y: p[1]}); err != nil {
			t.Fatalf("AddNode(%d): %v", i, err)
		}
	}

	return g
}

func nodeID(i int) string {
	return "p" + strconv.Itoa(i)
}

// unitSquare returns the four corners of the unit square in an order
// whose perimeter walk is already optimal.
func unitSquare() [][2]float64 {
	return [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// convexPolygon returns n points on a circle of the given radius; the
// optimal tour is the polygon boundary in either direction.
func convexPolygon(n int, radius float64) [][2]float64 {
	pts := make([][2]float64, n)
	var i int
	var theta float64
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{radius * math.Cos(theta), radius * math.Sin(theta)}
	}

	return pts
}

// polygonPerimeter is the closed boundary length of convexPolygon(n, radius).
func polygonPerimeter(n int, radius float64) float64 {
	side := 2 * radius * math.Sin(math.Pi/float64(n))

	return float64(n) * side
}

// validateClosedTour checks the uniform result contract for an n-node
// instance: n ≥ 2 yields n+1 path elements with the first repeated last
// and every node visited exactly once; the reported distance matches the
// path geometry.
func validateClosedTour(t *testing.T, res solver.Result, n int) {
	t.Helper()

	switch n {
	case 0:
		if len(res.Path) != 0 {
			t.Fatalf("n=0: want empty path, got %d elements", len(res.Path))
		}
		if res.Perf.Distance != 0 {
			t.Fatalf("n=0: want zero distance, got %v", res.Perf.Distance)
		}

		return
	case 1:
		if len(res.Path) != 1 {
			t.Fatalf("n=1: want a single un-closed element, got %d", len(res.Path))
		}
		if res.Perf.Distance != 0 {
			t.Fatalf("n=1: want zero distance, got %v", res.Perf.Distance)
		}

		return
	}

	if len(res.Path) != n+1 {
		t.Fatalf("want %d path elements (closed), got %d", n+1, len(res.Path))
	}
	if res.Path[0].ID != res.Path[n].ID {
		t.Fatalf("tour not closed: first %q, last %q", res.Path[0].ID, res.Path[n].ID)
	}

	seen := make(map[string]bool, n)
	for _, nd := range res.Path[:n] {
		if seen[nd.ID] {
			t.Fatalf("node %q visited twice", nd.ID)
		}
		seen[nd.ID] = true
	}
	if len(seen) != n {
		t.Fatalf("want %d distinct nodes, got %d", n, len(seen))
	}

	if want := planar.TourLength(res.Path); math.Abs(want-res.Perf.Distance) > epsLoose {
		t.Fatalf("reported distance %v disagrees with path geometry %v", res.Perf.Distance, want)
	}
}
