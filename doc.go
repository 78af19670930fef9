// Package tourlab is an interactive travelling-salesman workbench:
// a catalogue of classic TSP heuristics over planar point sets, a
// timeout-bounded cancellable runner, and a leaderboard for comparing
// the results.
//
// Layout:
//
//	planar      - the coordinate graph model (Node, Edge, Graph) and
//	              Euclidean tour geometry
//	solver      - the seven heuristics and their registry: brute force,
//	              nearest neighbor, k-opt, simulated annealing, genetic,
//	              ant colony, GRASP
//	runner      - single-settlement execution control: timeouts,
//	              cancellation, last-caller-wins supersession, and the
//	              run-all Pool
//	leaderboard - immutable result rows with summary statistics
//	graphio     - JSON/YAML instance files
//	cmd/tourlab - the command-line front end
//
// Every heuristic follows the same contract: a graph and an open config
// bag in, a closed tour plus performance metrics out. Runs are
// deterministic for a fixed seed, and every blocking loop honors
// context cancellation at checkpoints.
package tourlab
