// tourlab is the command-line workbench: list the heuristic catalogue,
// generate random instances, solve one instance, or race every
// heuristic against the same graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
}

// logger is built once in the persistent pre-run and shared by every
// subcommand.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "tourlab",
	Short: "Interactive TSP heuristic workbench",
	Long: "Tourlab runs travelling-salesman heuristics over planar point sets:\n" +
		"exact search, constructive and local-search tours, and the usual\n" +
		"metaheuristics, all under one timeout-bounded runner.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = initLogger(rootFlags.logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.Version = version
}

func main() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger builds the process logger with the requested level.
func initLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	cfg.EncoderConfig.TimeKey = "t"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	log, _ := cfg.Build()

	return log
}
