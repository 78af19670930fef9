package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkarel/tourlab/graphio"
	"github.com/vkarel/tourlab/leaderboard"
	"github.com/vkarel/tourlab/runner"
	"github.com/vkarel/tourlab/solver"
)

var compareFlags struct {
	input   string
	timeout time.Duration
	skip    []string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Race every heuristic against the same graph",
	Long: "Compare runs all catalogue heuristics concurrently on the given\n" +
		"instance and prints a leaderboard ranked by tour distance. Use\n" +
		"--skip to exclude slow entries (the brute-force search is\n" +
		"impractical beyond a dozen nodes).",
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVarP(&compareFlags.input, "file", "f", "", "Graph file (.json, .yaml or .yml; required)")
	f.DurationVar(&compareFlags.timeout, "timeout", 30*time.Second, "Per-heuristic timeout (0 = none)")
	f.StringSliceVar(&compareFlags.skip, "skip", nil, "Catalogue keys to exclude")

	_ = compareCmd.MarkFlagRequired("file")
}

func runCompare(cmd *cobra.Command, _ []string) error {
	g, err := graphio.Load(compareFlags.input)
	if err != nil {
		return err
	}

	reg := compareRegistry(compareFlags.skip)
	pool := runner.NewPool(reg, func() *runner.Runner {
		return runner.New(reg, logger)
	})

	board := leaderboard.New()
	outcomes := pool.RunAll(g, nil, compareFlags.timeout)

	out := cmd.OutOrStdout()
	for _, oc := range outcomes {
		if oc.Err != nil {
			fmt.Fprintf(out, "%-17s FAILED: %v\n", oc.Algorithm, oc.Err)

			continue
		}
		board.Add(oc.Algorithm, oc.Result)
	}

	fmt.Fprintf(out, "\n%-4s %-17s %12s %14s %12s %12s\n",
		"#", "ALGORITHM", "DISTANCE", "RUNTIME", "READS", "WRITES")
	for i, e := range board.Ranked() {
		fmt.Fprintf(out, "%-4d %-17s %12.4f %14s %12d %12d\n",
			i+1, e.Algorithm, e.Perf.Distance, e.Perf.Runtime, e.Perf.Reads, e.Perf.Writes)
	}

	if s := board.Summarize(""); s.Count > 1 {
		fmt.Fprintf(out, "\n%d finished: best %.4f, mean %.4f, stddev %.4f\n",
			s.Count, s.BestDistance, s.MeanDistance, s.StdDev)
	}

	return nil
}

// compareRegistry rebuilds the catalogue without the skipped keys.
func compareRegistry(skip []string) *solver.Registry {
	if len(skip) == 0 {
		return solver.Default()
	}
	skipped := make(map[string]bool, len(skip))
	for _, k := range skip {
		skipped[k] = true
	}

	var kept []solver.Descriptor
	for _, d := range solver.Default().Descriptors() {
		if !skipped[d.Key] {
			kept = append(kept, d)
		}
	}

	return solver.NewRegistry(kept...)
}
