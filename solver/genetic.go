// Package solver — genetic algorithm with order crossover.
//
// SolveGenetic evolves a population of index permutations:
//
//   - Seeding: one nearest-neighbor tour + random permutations.
//   - Fitness: 1/distance (shorter is fitter); selection never needs the
//     reciprocal explicitly, ranking by distance is equivalent.
//   - Per generation: the top eliteCount individuals carry over unchanged;
//     the remainder is bred by tournament selection (size 3) and order
//     crossover (OX) with probability crossoverRate (direct parent copy
//     otherwise), then swap-mutated with probability mutationRate.
//   - The global best across all generations is returned.
package solver

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// tournamentSize is the fixed tournament width for parent selection.
const tournamentSize = 3

// GeneticOptions configures SolveGenetic.
type GeneticOptions struct {
	// PopulationSize is the number of individuals. Default 50.
	PopulationSize int

	// Generations is the number of evolution rounds. Default 100.
	Generations int

	// MutationRate is the per-child swap-mutation probability. Default 0.1.
	MutationRate float64

	// CrossoverRate is the probability a child is bred by OX rather than
	// copied from its first parent. Default 0.8.
	CrossoverRate float64

	// EliteCount is how many top individuals survive unchanged; clamped
	// to the population size. Default 2.
	EliteCount int

	// Seed drives all randomness; 0 selects the fixed default stream.
	Seed int64
}

// DefaultGeneticOptions returns the catalogue defaults for SolveGenetic.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.1,
		CrossoverRate:  0.8,
		EliteCount:     2,
	}
}

// SolveGenetic runs the evolution described in the package comment.
//
// Contracts:
//   - g must be non-nil (ErrNilGraph otherwise).
//   - Stochastic; reproducible per Seed.
//
// Complexity: O(generations · populationSize · n) plus the O(pop·log pop)
// per-generation ranking sort.
func SolveGenetic(ctx context.Context, g *planar.Graph, opts GeneticOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	started := time.Now()
	in := newInstance(g, NewCounter())
	if res, done := in.solveTrivial(started); done {
		return res, nil
	}

	if opts.PopulationSize < 2 {
		opts.PopulationSize = DefaultGeneticOptions().PopulationSize
	}
	if opts.Generations < 1 {
		opts.Generations = DefaultGeneticOptions().Generations
	}
	elite := opts.EliteCount
	if elite < 0 {
		elite = 0
	}
	if elite > opts.PopulationSize {
		elite = opts.PopulationSize
	}

	var (
		n   = in.n
		rng = rngFromSeed(opts.Seed)
		pop = make([][]int, opts.PopulationSize)
		lns = make([]float64, opts.PopulationSize)
	)
	// Seed: one greedy tour, the rest random permutations.
	pop[0] = in.nearestNeighborOrder(0)
	for i := 1; i < opts.PopulationSize; i++ {
		pop[i] = randomPerm(n, rng)
		in.ctr.AddWrites(int64(n))
	}
	for i := range pop {
		lns[i] = in.orderLength(pop[i])
	}

	var (
		bestOrder = copyOrder(pop[0])
		bestLen   = lns[0]
		rank      = identityOrder(opts.PopulationSize)
		nextPop   = make([][]int, opts.PopulationSize)
		gen       int
	)
	for i := range pop {
		if lns[i] < bestLen {
			bestLen = lns[i]
			bestOrder = copyOrder(pop[i])
		}
	}

	for gen = 0; gen < opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		// Rank individuals by distance ascending (fitness descending).
		sort.Slice(rank, func(a, b int) bool { return lns[rank[a]] < lns[rank[b]] })

		// Elites survive verbatim.
		for i := 0; i < elite; i++ {
			nextPop[i] = copyOrder(pop[rank[i]])
			in.ctr.AddWrites(int64(n))
		}

		// Breed the remainder.
		for i := elite; i < opts.PopulationSize; i++ {
			p1 := pop[tournamentPick(rank, lns, rng)]
			var child []int
			if rng.Float64() < opts.CrossoverRate {
				p2 := pop[tournamentPick(rank, lns, rng)]
				child = crossoverOX(p1, p2, rng)
			} else {
				child = copyOrder(p1)
			}
			in.ctr.AddWrites(int64(n))

			if rng.Float64() < opts.MutationRate {
				mutateSwap(child, rng, in.ctr)
			}
			nextPop[i] = child
		}

		pop, nextPop = nextPop, pop
		for i := range pop {
			lns[i] = in.orderLength(pop[i])
			if lns[i] < bestLen-DefaultEps {
				bestLen = lns[i]
				bestOrder = copyOrder(pop[i])
			}
		}
	}

	return in.finish(bestOrder, started), nil
}

// tournamentPick returns the population index of the fittest of
// tournamentSize uniformly drawn contenders.
func tournamentPick(rank []int, lns []float64, rng *rand.Rand) int {
	best := rank[rng.Intn(len(rank))]
	for t := 1; t < tournamentSize; t++ {
		c := rank[rng.Intn(len(rank))]
		if lns[c] < lns[best] {
			best = c
		}
	}

	return best
}

// crossoverOX performs order crossover: the child inherits the contiguous
// slice p1[a..b] in place, then fills the remaining positions with p2's
// genes in p2 order (starting after b, wrapping), skipping duplicates.
// Preserves relative order from both parents; always yields a valid
// permutation.
func crossoverOX(p1, p2 []int, rng *rand.Rand) []int {
	n := len(p1)
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}

	child := make([]int, n)
	taken := make([]bool, n)
	for i := a; i <= b; i++ {
		child[i] = p1[i]
		taken[p1[i]] = true
	}

	// Fill the rest from p2, reading and writing from position b+1 onward.
	write := (b + 1) % n
	for off := 0; off < n; off++ {
		gene := p2[(b+1+off)%n]
		if taken[gene] {
			continue
		}
		child[write] = gene
		taken[gene] = true
		write = (write + 1) % n
	}

	return child
}

// mutateSwap exchanges two uniformly drawn positions.
func mutateSwap(order []int, rng *rand.Rand, ctr *Counter) {
	n := len(order)
	i := rng.Intn(n)
	j := rng.Intn(n)
	order[i], order[j] = order[j], order[i]
	ctr.AddWrites(2)
}
