package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/runner"
	"github.com/vkarel/tourlab/solver"
)

func TestPool_RunAllPreservesRegistryOrder(t *testing.T) {
	// Skip the factorial baseline; four nodes would be fine, but the pool
	// contract is the point here, not solve speed.
	var descs []solver.Descriptor
	for _, d := range solver.Default().Descriptors() {
		if d.Key != "naive" {
			descs = append(descs, d)
		}
	}
	reg := solver.NewRegistry(descs...)
	pool := runner.NewPool(reg, nil)

	outcomes := pool.RunAll(testGraph(t), nil, 30*time.Second)
	require.Len(t, outcomes, len(reg.Keys()))

	for i, key := range reg.Keys() {
		oc := outcomes[i]
		require.Equal(t, key, oc.Algorithm)
		require.NoError(t, oc.Err, "%s failed", key)
		require.Len(t, oc.Result.Path, 5)
		require.Positive(t, oc.Result.Perf.Distance)
	}
}

func TestPool_PerAlgorithmConfigAndSparseBags(t *testing.T) {
	reg := solver.NewRegistry(
		mustDescriptor(t, "k-opt"),
		mustDescriptor(t, "nearest-neighbor"),
	)
	pool := runner.NewPool(reg, nil)

	cfgs := map[string]solver.Config{
		"k-opt": {"k": 3},
		// nearest-neighbor deliberately missing: declared defaults apply.
	}
	outcomes := pool.RunAll(testGraph(t), cfgs, 0)
	require.Len(t, outcomes, 2)
	for _, oc := range outcomes {
		require.NoError(t, oc.Err)
	}
}

func TestPool_MemberFailureStaysInItsOutcome(t *testing.T) {
	blocked := solver.Descriptor{
		Key:  "stuck",
		Name: "Never finishes",
		Solve: func(ctx context.Context, _ *planar.Graph, _ solver.Config) (solver.Result, error) {
			<-ctx.Done()

			return solver.Result{}, ctx.Err()
		},
	}
	reg := solver.NewRegistry(blocked, mustDescriptor(t, "nearest-neighbor"))
	pool := runner.NewPool(reg, nil)

	outcomes := pool.RunAll(testGraph(t), nil, 25*time.Millisecond)
	require.Len(t, outcomes, 2)

	require.Equal(t, "stuck", outcomes[0].Algorithm)
	require.ErrorIs(t, outcomes[0].Err, runner.ErrTimeout)

	require.Equal(t, "nearest-neighbor", outcomes[1].Algorithm)
	require.NoError(t, outcomes[1].Err)
}

func TestPool_CancelAllStopsEveryMember(t *testing.T) {
	blocked := solver.Descriptor{
		Key:  "stuck",
		Name: "Never finishes",
		Solve: func(ctx context.Context, _ *planar.Graph, _ solver.Config) (solver.Result, error) {
			<-ctx.Done()

			return solver.Result{}, ctx.Err()
		},
	}
	reg := solver.NewRegistry(blocked)
	pool := runner.NewPool(reg, nil)

	done := make(chan []runner.Outcome, 1)
	go func() { done <- pool.RunAll(testGraph(t), nil, 0) }()

	require.Eventually(t, func() bool {
		return pool.Runner("stuck").State().IsRunning
	}, time.Second, pollTick)

	pool.CancelAll()

	outcomes := <-done
	require.Len(t, outcomes, 1)
	require.ErrorIs(t, outcomes[0].Err, runner.ErrCancelled)
	require.False(t, pool.Runner("stuck").State().IsRunning)
}

func TestPool_RunnerAccessor(t *testing.T) {
	pool := runner.NewPool(solver.Default(), nil)
	require.NotNil(t, pool.Runner("grasp"))
	require.Nil(t, pool.Runner("unknown"))
}

func mustDescriptor(t *testing.T, key string) solver.Descriptor {
	t.Helper()
	d, ok := solver.Default().Lookup(key)
	require.True(t, ok, "catalogue is missing %q", key)

	return d
}
