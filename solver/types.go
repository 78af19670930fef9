package solver

import (
	"errors"
	"time"

	"github.com/vkarel/tourlab/planar"
)

// DefaultEps is the acceptance tolerance for local-search improvements:
// a move is accepted only when it shortens the tour by more than DefaultEps.
// Guards against floating-point oscillation in 2-opt/3-opt loops.
const DefaultEps = 1e-10

// Sentinel errors shared by the solver catalogue.
var (
	// ErrNilGraph indicates a nil *planar.Graph was passed to a solver.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrAlgorithmNotFound indicates a registry lookup with an unknown key.
	ErrAlgorithmNotFound = errors.New("solver: algorithm not found")
)

// Performance captures the metrics of one completed solve call.
// Produced once, at the end of the call; immutable thereafter.
type Performance struct {
	// Distance is the final closed-tour length (plain Euclidean, unrounded).
	Distance float64 `json:"distance" yaml:"distance"`

	// Runtime is the wall-clock duration of the solve call.
	Runtime time.Duration `json:"runtime" yaml:"runtime"`

	// Reads and Writes are the operation-counter totals for the call.
	// Instrumentation only — never used for control flow.
	Reads  int64 `json:"reads" yaml:"reads"`
	Writes int64 `json:"writes" yaml:"writes"`
}

// Result is the uniform solver output: the tour and its metrics.
//
// Path is explicitly closed for n ≥ 2 (the first node repeats at the end).
// For n == 0 the path is empty; for n == 1 it is the single node, un-closed.
type Result struct {
	Path []planar.Node `json:"path" yaml:"path"`
	Perf Performance   `json:"performance" yaml:"performance"`
}
