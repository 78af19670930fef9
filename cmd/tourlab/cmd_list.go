package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkarel/tourlab/solver"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the heuristic catalogue and its parameters",
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, d := range solver.Default().Descriptors() {
		fmt.Fprintf(out, "%-17s %s\n", d.Key, d.Name)
		for _, p := range d.Params {
			fmt.Fprintf(out, "    %-26s %s (default %g, range %g..%g)\n",
				p.Key, p.Label, p.Default, p.Min, p.Max)
		}
	}
}
