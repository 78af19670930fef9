package main

import (
	"fmt"
	"strings"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// parseConfig turns repeated --set key=value flags into a config bag.
// Values stay strings; the option decoders parse and clamp them.
func parseConfig(sets []string) (solver.Config, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	cfg := make(solver.Config, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", s)
		}
		cfg[key] = value
	}

	return cfg, nil
}

// applyTour stores res's tour on g as display edges.
func applyTour(g *planar.Graph, res solver.Result) error {
	return g.SetEdges(planar.TourEdges(res.Path))
}
