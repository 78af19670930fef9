package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vkarel/tourlab/graphio"
	"github.com/vkarel/tourlab/runner"
	"github.com/vkarel/tourlab/solver"
)

var solveFlags struct {
	input     string
	output    string
	algorithm string
	timeout   time.Duration
	sets      []string
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run one heuristic against a graph file",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveFlags.input, "file", "f", "", "Graph file (.json, .yaml or .yml; required)")
	f.StringVarP(&solveFlags.output, "out", "o", "", "Write the graph with the tour edges back to this path")
	f.StringVarP(&solveFlags.algorithm, "algorithm", "a", "nearest-neighbor", "Catalogue key (see 'tourlab list')")
	f.DurationVar(&solveFlags.timeout, "timeout", 0, "Per-run timeout (0 = none)")
	f.StringArrayVar(&solveFlags.sets, "set", nil, "Heuristic option as key=value (repeatable)")

	_ = solveCmd.MarkFlagRequired("file")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	g, err := graphio.Load(solveFlags.input)
	if err != nil {
		return err
	}
	cfg, err := parseConfig(solveFlags.sets)
	if err != nil {
		return err
	}

	r := runner.New(solver.Default(), logger)
	res, err := r.Run(solveFlags.algorithm, g, cfg, solveFlags.timeout)
	if err != nil {
		if errors.Is(err, runner.ErrTimeout) {
			return fmt.Errorf("%s did not finish: %w", solveFlags.algorithm, err)
		}

		return err
	}

	logger.Info("solve finished",
		zap.String("algorithm", solveFlags.algorithm),
		zap.Float64("distance", res.Perf.Distance),
		zap.Duration("runtime", res.Perf.Runtime))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Algorithm: %s\n", solveFlags.algorithm)
	fmt.Fprintf(out, "Distance:  %.4f\n", res.Perf.Distance)
	fmt.Fprintf(out, "Runtime:   %s\n", res.Perf.Runtime)
	fmt.Fprintf(out, "Reads:     %d\n", res.Perf.Reads)
	fmt.Fprintf(out, "Writes:    %d\n", res.Perf.Writes)

	if solveFlags.output != "" {
		if err = applyTour(g, res); err != nil {
			return err
		}
		if err = graphio.Save(solveFlags.output, g); err != nil {
			return err
		}
		fmt.Fprintf(out, "Tour saved to %s\n", solveFlags.output)
	}

	return nil
}
