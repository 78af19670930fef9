// Package solver — the algorithm registry.
//
// The registry is a fixed, closed descriptor table: string key →
// display name, declared configurable parameters (for UI sliders and
// range clamping), and the solve adapter. Listing preserves registration
// order; lookup by key reports presence explicitly. No runtime
// registration exists in the product path — NewRegistry is exported so
// tests can assemble purpose-built tables.
package solver

import (
	"context"

	"github.com/vkarel/tourlab/planar"
)

// ParamKind discriminates configurable parameter types.
type ParamKind string

const (
	// ParamNumber is a numeric parameter with a [Min,Max] range hint.
	ParamNumber ParamKind = "number"

	// ParamSelect is an enumerated parameter with fixed Choices.
	ParamSelect ParamKind = "select"
)

// ParamSpec declares one configurable option of a heuristic: the bag key
// it is read from, a human label, its kind, default, and range/choices.
type ParamSpec struct {
	Key     string
	Label   string
	Kind    ParamKind
	Default float64
	Min     float64
	Max     float64
	Choices []string // ParamSelect only
}

// SolveFunc is the uniform solve adapter: graph and open config bag in,
// Result out. Adapters decode the bag into the heuristic's typed options
// (defaults filled, ranges clamped) before dispatching.
type SolveFunc func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error)

// Descriptor describes one registry entry.
type Descriptor struct {
	// Key is the stable lookup key (e.g. "annealing").
	Key string

	// Name is the human-readable display name.
	Name string

	// Params lists the options this heuristic recognizes.
	Params []ParamSpec

	// Solve executes the heuristic.
	Solve SolveFunc
}

// Registry is an ordered, immutable-after-construction descriptor table.
type Registry struct {
	keys  []string
	byKey map[string]Descriptor
}

// NewRegistry builds a registry from the given descriptors, preserving
// order. Later duplicates of a key silently win (last write), matching
// map semantics; the default catalogue has no duplicates.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{byKey: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		if _, dup := r.byKey[d.Key]; !dup {
			r.keys = append(r.keys, d.Key)
		}
		r.byKey[d.Key] = d
	}

	return r
}

// Lookup returns the descriptor for key and whether it exists.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	d, ok := r.byKey[key]

	return d, ok
}

// Keys lists all registry keys in registration order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Descriptors lists all descriptors in registration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.byKey[k])
	}

	return out
}

// Default returns the fixed tourlab catalogue: seven heuristics in their
// canonical comparison order.
func Default() *Registry {
	return NewRegistry(
		Descriptor{
			Key:  "naive",
			Name: "Naive (brute force)",
			Solve: func(ctx context.Context, g *planar.Graph, _ Config) (Result, error) {
				return SolveNaive(ctx, g)
			},
		},
		Descriptor{
			Key:  "nearest-neighbor",
			Name: "Nearest Neighbor",
			Solve: func(ctx context.Context, g *planar.Graph, _ Config) (Result, error) {
				return SolveNearestNeighbor(ctx, g)
			},
		},
		Descriptor{
			Key:  "k-opt",
			Name: "k-opt local search",
			Params: []ParamSpec{
				{Key: "k", Label: "k (edges removed)", Kind: ParamNumber, Default: 2, Min: 2, Max: 5},
			},
			Solve: func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error) {
				return SolveKOpt(ctx, g, kOptOptionsFromConfig(cfg))
			},
		},
		Descriptor{
			Key:  "annealing",
			Name: "Simulated Annealing",
			Params: []ParamSpec{
				{Key: "initialTemperature", Label: "Initial temperature", Kind: ParamNumber, Default: 10000, Min: 1, Max: 1e9},
				{Key: "coolingRate", Label: "Cooling rate", Kind: ParamNumber, Default: 0.995, Min: 0.5, Max: 0.999999},
				{Key: "minTemperature", Label: "Minimum temperature", Kind: ParamNumber, Default: 0.1, Min: 1e-9, Max: 1e6},
				{Key: "maxIterations", Label: "Max iterations", Kind: ParamNumber, Default: 100000, Min: 1, Max: 1e8},
			},
			Solve: func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error) {
				return SolveAnneal(ctx, g, annealOptionsFromConfig(cfg))
			},
		},
		Descriptor{
			Key:  "genetic",
			Name: "Genetic Algorithm",
			Params: []ParamSpec{
				{Key: "populationSize", Label: "Population size", Kind: ParamNumber, Default: 50, Min: 2, Max: 10000},
				{Key: "generations", Label: "Generations", Kind: ParamNumber, Default: 100, Min: 1, Max: 1e6},
				{Key: "mutationRate", Label: "Mutation rate", Kind: ParamNumber, Default: 0.1, Min: 0, Max: 1},
				{Key: "crossoverRate", Label: "Crossover rate", Kind: ParamNumber, Default: 0.8, Min: 0, Max: 1},
				{Key: "eliteCount", Label: "Elite count", Kind: ParamNumber, Default: 2, Min: 0, Max: 10000},
			},
			Solve: func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error) {
				return SolveGenetic(ctx, g, geneticOptionsFromConfig(cfg))
			},
		},
		Descriptor{
			Key:  "ant-colony",
			Name: "Ant Colony Optimization",
			Params: []ParamSpec{
				{Key: "antCount", Label: "Ant count", Kind: ParamNumber, Default: 20, Min: 1, Max: 10000},
				{Key: "iterations", Label: "Iterations", Kind: ParamNumber, Default: 100, Min: 1, Max: 1e6},
				{Key: "alpha", Label: "Pheromone weight (α)", Kind: ParamNumber, Default: 1, Min: 0, Max: 10},
				{Key: "beta", Label: "Distance weight (β)", Kind: ParamNumber, Default: 2, Min: 0, Max: 10},
				{Key: "evaporationRate", Label: "Evaporation rate", Kind: ParamNumber, Default: 0.5, Min: 0, Max: 0.999999},
				{Key: "q", Label: "Deposit scale (Q)", Kind: ParamNumber, Default: 100, Min: 1e-9, Max: 1e9},
			},
			Solve: func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error) {
				return SolveAntColony(ctx, g, antColonyOptionsFromConfig(cfg))
			},
		},
		Descriptor{
			Key:  "grasp",
			Name: "GRASP",
			Params: []ParamSpec{
				{Key: "alpha", Label: "RCL tolerance (α)", Kind: ParamNumber, Default: 0.3, Min: 0, Max: 1},
				{Key: "iterations", Label: "Iterations", Kind: ParamNumber, Default: 100, Min: 1, Max: 1e6},
				{Key: "localSearchMaxIterations", Label: "Local search budget", Kind: ParamNumber, Default: 1000, Min: 1, Max: 1e8},
			},
			Solve: func(ctx context.Context, g *planar.Graph, cfg Config) (Result, error) {
				return SolveGRASP(ctx, g, graspOptionsFromConfig(cfg))
			},
		},
	)
}
