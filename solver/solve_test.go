// Package solver_test exercises the uniform heuristic contract through
// the public registry: closed-tour shape, trivial-size behavior, nil
// handling, determinism, and cooperative cancellation.
package solver_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vkarel/tourlab/solver"
)

// -----------------------------------------------------------------------------
// 1) Contract - every catalogue entry returns a valid closed tour.
// -----------------------------------------------------------------------------

func TestAllSolvers_ClosedTourContract(t *testing.T) {
	const n = 8
	g := mustGraph(t, convexPolygon(n, 10))

	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			res, err := d.Solve(context.Background(), g, nil)
			if err != nil {
				t.Fatalf("%s failed: %v", d.Key, err)
			}
			validateClosedTour(t, res, n)
			if res.Perf.Distance <= 0 {
				t.Fatalf("%s: non-positive distance %v", d.Key, res.Perf.Distance)
			}
			if res.Perf.Reads <= 0 {
				t.Fatalf("%s: expected read traffic, got %d", d.Key, res.Perf.Reads)
			}
			if res.Perf.Runtime < 0 {
				t.Fatalf("%s: negative runtime %v", d.Key, res.Perf.Runtime)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 2) Contract - trivial sizes are answered identically by every entry.
// -----------------------------------------------------------------------------

func TestAllSolvers_TrivialSizes(t *testing.T) {
	empty := mustGraph(t, nil)
	single := mustGraph(t, [][2]float64{{5, 5}})
	pair := mustGraph(t, [][2]float64{{0, 0}, {3, 4}})

	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			res, err := d.Solve(context.Background(), empty, nil)
			if err != nil {
				t.Fatalf("n=0 failed: %v", err)
			}
			validateClosedTour(t, res, 0)

			res, err = d.Solve(context.Background(), single, nil)
			if err != nil {
				t.Fatalf("n=1 failed: %v", err)
			}
			validateClosedTour(t, res, 1)

			res, err = d.Solve(context.Background(), pair, nil)
			if err != nil {
				t.Fatalf("n=2 failed: %v", err)
			}
			validateClosedTour(t, res, 2)
			// The unique two-node tour: out and back, 2 × 5.
			if math.Abs(res.Perf.Distance-10) > epsLoose {
				t.Fatalf("n=2 distance: want 10, got %v", res.Perf.Distance)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 3) Contract - nil graphs are rejected with the sentinel.
// -----------------------------------------------------------------------------

func TestAllSolvers_NilGraph(t *testing.T) {
	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			_, err := d.Solve(context.Background(), nil, nil)
			if !errors.Is(err, solver.ErrNilGraph) {
				t.Fatalf("want ErrNilGraph, got %v", err)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 4) Quality - the unit square is solved to the 4.0 perimeter by every
//    entry except ant colony, whose walks are only near-optimal bounded.
// -----------------------------------------------------------------------------

func TestAllSolvers_UnitSquareQuality(t *testing.T) {
	g := mustGraph(t, unitSquare())
	diagonalCycle := 2 + 2*math.Sqrt2 // the only other 4-corner cycle class

	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			res, err := d.Solve(context.Background(), g, nil)
			if err != nil {
				t.Fatalf("%s failed: %v", d.Key, err)
			}
			validateClosedTour(t, res, 4)

			if d.Key == "ant-colony" {
				if res.Perf.Distance > diagonalCycle+epsLoose {
					t.Fatalf("impossible 4-node cycle length %v", res.Perf.Distance)
				}

				// With distance heavily weighted the colony locks onto the
				// perimeter.
				res, err = d.Solve(context.Background(), g, solver.Config{"beta": 8})
				if err != nil {
					t.Fatalf("high-beta run failed: %v", err)
				}
				if math.Abs(res.Perf.Distance-unitSquarePerimeter) > 1e-1 {
					t.Fatalf("high-beta colony missed the perimeter: %v", res.Perf.Distance)
				}

				return
			}
			if math.Abs(res.Perf.Distance-unitSquarePerimeter) > epsLoose {
				t.Fatalf("want perimeter %v, got %v", unitSquarePerimeter, res.Perf.Distance)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 5) Determinism - identical input and config produce identical output.
// -----------------------------------------------------------------------------

func TestAllSolvers_Determinism(t *testing.T) {
	g := mustGraph(t, convexPolygon(7, 3))

	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			base, err := d.Solve(context.Background(), g, nil)
			if err != nil {
				t.Fatalf("baseline failed: %v", err)
			}

			var rerun solver.Result
			for trial := 0; trial < 3; trial++ {
				rerun, err = d.Solve(context.Background(), g, nil)
				if err != nil {
					t.Fatalf("trial %d failed: %v", trial, err)
				}
				if rerun.Perf.Distance != base.Perf.Distance {
					t.Fatalf("trial %d: distance %v != baseline %v",
						trial, rerun.Perf.Distance, base.Perf.Distance)
				}
				for i := range base.Path {
					if rerun.Path[i].ID != base.Path[i].ID {
						t.Fatalf("trial %d: tour diverges at %d", trial, i)
					}
				}
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 6) Determinism - a changed seed may change the tour but never breaks
//    the contract; the same seed always reproduces.
// -----------------------------------------------------------------------------

func TestSeededSolvers_SeedReproducibility(t *testing.T) {
	g := mustGraph(t, convexPolygon(12, 5))
	seeded := []string{"annealing", "genetic", "ant-colony", "grasp"}
	reg := solver.Default()

	for _, key := range seeded {
		t.Run(key, func(t *testing.T) {
			d, ok := reg.Lookup(key)
			if !ok {
				t.Fatalf("catalogue is missing %q", key)
			}

			cfg := solver.Config{"seed": 7}
			first, err := d.Solve(context.Background(), g, cfg)
			if err != nil {
				t.Fatalf("first run failed: %v", err)
			}
			second, err := d.Solve(context.Background(), g, cfg)
			if err != nil {
				t.Fatalf("second run failed: %v", err)
			}

			validateClosedTour(t, first, 12)
			validateClosedTour(t, second, 12)
			if first.Perf.Distance != second.Perf.Distance {
				t.Fatalf("same seed, different distances: %v vs %v",
					first.Perf.Distance, second.Perf.Distance)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// 7) Quality - exhaustive search matches the known optimum, and no
//    heuristic beats it.
// -----------------------------------------------------------------------------

func TestNaive_OptimalOnConvexPolygon(t *testing.T) {
	const n = 7
	g := mustGraph(t, convexPolygon(n, 2))
	want := polygonPerimeter(n, 2)

	res, err := solver.SolveNaive(context.Background(), g)
	if err != nil {
		t.Fatalf("SolveNaive failed: %v", err)
	}
	validateClosedTour(t, res, n)
	if math.Abs(res.Perf.Distance-want) > epsLoose {
		t.Fatalf("want optimal %v, got %v", want, res.Perf.Distance)
	}

	for _, d := range solver.Default().Descriptors() {
		heur, err := d.Solve(context.Background(), g, nil)
		if err != nil {
			t.Fatalf("%s failed: %v", d.Key, err)
		}
		if heur.Perf.Distance < res.Perf.Distance-epsLoose {
			t.Fatalf("%s reported %v, below the exhaustive optimum %v",
				d.Key, heur.Perf.Distance, res.Perf.Distance)
		}
	}
}

// -----------------------------------------------------------------------------
// 8) Cancellation - a pre-cancelled context stops iterative entries at
//    their first checkpoint. Entries that finish before a checkpoint may
//    legitimately return a result instead.
// -----------------------------------------------------------------------------

func TestAllSolvers_PreCancelledContext(t *testing.T) {
	g := mustGraph(t, convexPolygon(9, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// These entries are guaranteed to cross a checkpoint on 9 nodes.
	guaranteed := map[string]bool{
		"naive":            true,
		"nearest-neighbor": true,
		"annealing":        true,
		"genetic":          true,
		"ant-colony":       true,
		"grasp":            true,
	}

	for _, d := range solver.Default().Descriptors() {
		t.Run(d.Key, func(t *testing.T) {
			res, err := d.Solve(ctx, g, nil)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					t.Fatalf("want context.Canceled, got %v", err)
				}

				return
			}
			if guaranteed[d.Key] {
				t.Fatalf("%s ignored a cancelled context", d.Key)
			}
			// Finished before the first checkpoint: still a valid tour.
			validateClosedTour(t, res, 9)
		})
	}
}

// -----------------------------------------------------------------------------
// 9) Config - k-opt variants all hold the contract and k=3 does not lose
//    to k=2 on a crossing-prone instance.
// -----------------------------------------------------------------------------

func TestKOpt_VariantsOnPolygon(t *testing.T) {
	const n = 10
	g := mustGraph(t, convexPolygon(n, 6))
	want := polygonPerimeter(n, 6)

	reg := solver.Default()
	d, ok := reg.Lookup("k-opt")
	if !ok {
		t.Fatal("catalogue is missing k-opt")
	}

	var prev float64
	for _, k := range []int{2, 3, 4, 5} {
		res, err := d.Solve(context.Background(), g, solver.Config{"k": k})
		if err != nil {
			t.Fatalf("k=%d failed: %v", k, err)
		}
		validateClosedTour(t, res, n)

		// On a convex polygon every 2-opt local optimum is the boundary.
		if math.Abs(res.Perf.Distance-want) > epsLoose {
			t.Fatalf("k=%d: want boundary %v, got %v", k, want, res.Perf.Distance)
		}
		if k > 2 && res.Perf.Distance > prev+epsLoose {
			t.Fatalf("k=%d regressed: %v vs %v at k-1", k, res.Perf.Distance, prev)
		}
		prev = res.Perf.Distance
	}
}

// -----------------------------------------------------------------------------
// 10) Edges of the planar model survive the solve untouched: solvers work
//     on snapshots and never mutate the caller's graph.
// -----------------------------------------------------------------------------

func TestSolvers_DoNotMutateInput(t *testing.T) {
	g := mustGraph(t, convexPolygon(6, 1))
	before := g.Nodes()

	for _, d := range solver.Default().Descriptors() {
		if _, err := d.Solve(context.Background(), g, nil); err != nil {
			t.Fatalf("%s failed: %v", d.Key, err)
		}
	}

	after := g.Nodes()
	for i := range before {
		if before[i].ID != after[i].ID ||
			before[i].X != after[i].X || before[i].Y != after[i].Y {
			t.Fatalf("input graph mutated at node %d", i)
		}
	}
}
