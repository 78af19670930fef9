// Package solver — ant colony optimization.
//
// SolveAntColony precomputes a dense distance matrix, initializes a
// symmetric pheromone matrix at 1/n, and iterates colonies: each ant
// builds a tour by roulette selection proportional to
// pheromone^alpha × (1/distance)^beta; once all ants of an iteration
// finish, every pheromone entry evaporates by (1−evaporationRate) and
// each ant deposits Q/length on every traversed edge in both directions
// (the metric is undirected). The global best tour across all iterations
// is returned.
//
// Matrices are gonum mat.Dense — the natural shape for the two n×n
// tables this heuristic lives on.
package solver

import (
	"context"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/vkarel/tourlab/planar"
)

// antZeroDistFloor substitutes for zero distances in the desirability
// term (coincident points would otherwise divide by zero).
const antZeroDistFloor = 1e-12

// AntColonyOptions configures SolveAntColony.
type AntColonyOptions struct {
	// AntCount is the number of ants per iteration. Default 20.
	AntCount int

	// Iterations is the number of colony rounds. Default 100.
	Iterations int

	// Alpha weighs pheromone influence. Default 1.0.
	Alpha float64

	// Beta weighs inverse-distance influence. Default 2.0.
	Beta float64

	// EvaporationRate is the per-iteration pheromone decay, in [0,1).
	// Default 0.5.
	EvaporationRate float64

	// Q scales the pheromone deposit per ant (deposit = Q/length).
	// Default 100.
	Q float64

	// Seed drives edge selection; 0 selects the fixed default stream.
	Seed int64
}

// DefaultAntColonyOptions returns the catalogue defaults for SolveAntColony.
func DefaultAntColonyOptions() AntColonyOptions {
	return AntColonyOptions{
		AntCount:        20,
		Iterations:      100,
		Alpha:           1.0,
		Beta:            2.0,
		EvaporationRate: 0.5,
		Q:               100,
	}
}

// SolveAntColony runs the colony described in the package comment.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Stochastic; reproducible per Seed. Ant k starts at node k mod n, so
//     randomness lives only in edge selection.
//
// Complexity: O(iterations · antCount · n²) time, O(n²) space.
func SolveAntColony(ctx context.Context, g *planar.Graph, opts AntColonyOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	if opts.AntCount < 1 {
		opts.AntCount = DefaultAntColonyOptions().AntCount
	}
	if opts.Iterations < 1 {
		opts.Iterations = DefaultAntColonyOptions().Iterations
	}
	if opts.EvaporationRate < 0 || opts.EvaporationRate >= 1 {
		opts.EvaporationRate = DefaultAntColonyOptions().EvaporationRate
	}

	var (
		n    = in.n
		rng  = rngFromSeed(opts.Seed)
		dist = mat.NewDense(n, n, nil)
		pher = mat.NewDense(n, n, nil)
	)
	// Distance matrix: counted once, here — ants then read the table.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := in.dist(i, j)
			dist.Set(i, j, d)
			dist.Set(j, i, d)
		}
	}
	// Pheromone starts flat at 1/n, symmetric by construction.
	initial := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				pher.Set(i, j, initial)
			}
		}
	}

	var (
		bestOrder []int
		bestLen   = math.Inf(1)
		weights   = make([]float64, n)
		visited   = make([]bool, n)
		tours     = make([][]int, opts.AntCount)
		lens      = make([]float64, opts.AntCount)
	)
	for a := range tours {
		tours[a] = make([]int, n)
	}

	for iter := 0; iter < opts.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		for a := 0; a < opts.AntCount; a++ {
			lens[a] = in.antWalk(tours[a], dist, pher, opts, a%n, rng, weights, visited)
			if lens[a] < bestLen-DefaultEps {
				bestLen = lens[a]
				bestOrder = copyOrder(tours[a])
			}
		}

		// Evaporate, then deposit Q/length along every ant's cycle.
		pher.Scale(1-opts.EvaporationRate, pher)
		for a := 0; a < opts.AntCount; a++ {
			if lens[a] <= 0 {
				continue
			}
			deposit := opts.Q / lens[a]
			tour := tours[a]
			for i := 0; i < n; i++ {
				u, v := tour[i], tour[(i+1)%n]
				pher.Set(u, v, pher.At(u, v)+deposit)
				pher.Set(v, u, pher.At(v, u)+deposit)
			}
		}
	}

	return in.finish(bestOrder, started), nil
}

// antWalk fills tour with one ant's cycle built from start and returns
// its closed length. weights and visited are caller-owned scratch.
func (in *instance) antWalk(tour []int, dist, pher *mat.Dense, opts AntColonyOptions, start int, rng *rand.Rand, weights []float64, visited []bool) float64 {
	n := len(tour)
	for i := range visited {
		visited[i] = false
	}

	cur := start
	tour[0] = cur
	visited[cur] = true
	in.ctr.AddWrites(1)

	var length float64
	for step := 1; step < n; step++ {
		// Desirability of every unvisited successor.
		var total float64
		for j := 0; j < n; j++ {
			if visited[j] {
				weights[j] = 0
				continue
			}
			d := dist.At(cur, j)
			if d < antZeroDistFloor {
				d = antZeroDistFloor
			}
			in.ctr.AddReads(1)
			w := math.Pow(pher.At(cur, j), opts.Alpha) * math.Pow(1/d, opts.Beta)
			weights[j] = w
			total += w
		}

		// Roulette pick; fall back to the first unvisited node when all
		// desirabilities underflowed to zero.
		next := -1
		if total > 0 {
			r := rng.Float64() * total
			for j := 0; j < n; j++ {
				if weights[j] == 0 {
					continue
				}
				r -= weights[j]
				if r <= 0 {
					next = j
					break
				}
			}
		}
		if next == -1 {
			for j := 0; j < n; j++ {
				if !visited[j] {
					next = j
					break
				}
			}
		}

		tour[step] = next
		visited[next] = true
		in.ctr.AddWrites(1)
		length += dist.At(cur, next)
		cur = next
	}
	length += dist.At(cur, start) // closing edge

	return length
}
