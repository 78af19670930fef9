// Package solver provides the tourlab heuristic catalogue for the
// Euclidean Traveling Salesman Problem.
//
// Seven interchangeable solvers share one contract — graph in, closed tour
// plus performance counters out:
//
//   - SolveNaive            — exhaustive n! search (baseline, n ≲ 8).
//   - SolveNearestNeighbor  — greedy construction, no improvement.
//   - SolveKOpt             — NN construction + 2-opt / 3-opt / sampled k-opt.
//   - SolveAnneal           — simulated annealing over random 2-opt moves.
//   - SolveGenetic          — order-crossover genetic algorithm.
//   - SolveAntColony        — ant colony optimization on a pheromone matrix.
//   - SolveGRASP            — greedy-randomized construction + 2-opt.
//
// Every solver special-cases n=0 (empty path, zero distance), n=1 (single
// un-closed node) and n=2 (the unique tour A→B→A) identically, so results
// stay comparable on a shared leaderboard. For n ≥ 2 the returned path is
// closed: len(path)==n+1 and path[0].ID==path[n].ID.
//
// Determinism: solvers with randomness take a Seed; seed 0 selects a fixed
// default stream, so the zero value is still reproducible. Improvement
// comparisons use DefaultEps to avoid floating-point oscillation.
//
// Cancellation: long loops poll ctx at iteration boundaries (per
// generation, per colony iteration, per local-search sweep) and return
// ctx.Err() promptly. No solver logs or panics on user input.
package solver
