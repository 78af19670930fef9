package leaderboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vkarel/tourlab/leaderboard"
	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

func result(distance float64, ids ...string) solver.Result {
	path := make([]planar.Node, len(ids))
	for i, id := range ids {
		path[i] = planar.Node{ID: id}
	}

	return solver.Result{
		Path: path,
		Perf: solver.Performance{Distance: distance, Runtime: time.Millisecond},
	}
}

func TestBoard_AddAssignsMonotonicIDs(t *testing.T) {
	b := leaderboard.New()

	e1 := b.Add("nearest-neighbor", result(10, "a", "b", "a"))
	e2 := b.Add("k-opt", result(8, "a", "b", "a"))
	require.Equal(t, int64(1), e1.ID)
	require.Equal(t, int64(2), e2.ID)
	require.Equal(t, 2, b.Len())

	// IDs never repeat, even across a clear.
	b.Clear()
	require.Equal(t, 0, b.Len())
	e3 := b.Add("grasp", result(9, "a", "b", "a"))
	require.Equal(t, int64(3), e3.ID)
}

func TestBoard_EntriesAreSnapshots(t *testing.T) {
	b := leaderboard.New()
	res := result(10, "a", "b", "a")

	entry := b.Add("annealing", res)

	// Mutating the caller's result after Add must not reach the board.
	res.Path[0].ID = "vandalized"
	got := b.Entries()
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].Path[0].ID)

	// Mutating a listed entry must not reach the board either.
	got[0].Algorithm = "edited"
	require.Equal(t, "annealing", b.Entries()[0].Algorithm)
	require.Equal(t, entry.ID, b.Entries()[0].ID)
}

func TestBoard_RankedOrdersByDistanceThenID(t *testing.T) {
	b := leaderboard.New()
	b.Add("slowest", result(30, "a", "b", "a"))
	b.Add("fast", result(10, "a", "b", "a"))
	b.Add("fast-too", result(10, "a", "b", "a"))
	b.Add("middle", result(20, "a", "b", "a"))

	ranked := b.Ranked()
	require.Equal(t, []string{"fast", "fast-too", "middle", "slowest"},
		[]string{ranked[0].Algorithm, ranked[1].Algorithm, ranked[2].Algorithm, ranked[3].Algorithm})

	// Insertion order is untouched.
	require.Equal(t, "slowest", b.Entries()[0].Algorithm)
}

func TestBoard_Best(t *testing.T) {
	b := leaderboard.New()

	_, ok := b.Best()
	require.False(t, ok)

	b.Add("a", result(5, "x", "y", "x"))
	b.Add("b", result(3, "x", "y", "x"))

	best, ok := b.Best()
	require.True(t, ok)
	require.Equal(t, "b", best.Algorithm)
	require.Equal(t, 3.0, best.Perf.Distance)
}

func TestBoard_Summarize(t *testing.T) {
	b := leaderboard.New()

	require.Equal(t, leaderboard.Summary{}, b.Summarize(""))

	b.Add("grasp", result(10, "a", "b", "a"))
	b.Add("grasp", result(14, "a", "b", "a"))
	b.Add("genetic", result(100, "a", "b", "a"))

	all := b.Summarize("")
	require.Equal(t, 3, all.Count)
	require.Equal(t, 10.0, all.BestDistance)
	require.InDelta(t, (10.0+14+100)/3, all.MeanDistance, 1e-9)
	require.Positive(t, all.StdDev)

	grasp := b.Summarize("grasp")
	require.Equal(t, 2, grasp.Count)
	require.Equal(t, 10.0, grasp.BestDistance)
	require.InDelta(t, 12.0, grasp.MeanDistance, 1e-9)

	single := b.Summarize("genetic")
	require.Equal(t, 1, single.Count)
	require.Zero(t, single.StdDev) // undefined for one sample, reported as 0

	require.Equal(t, leaderboard.Summary{}, b.Summarize("never-ran"))
}

func TestBoard_ConcurrentAdds(t *testing.T) {
	b := leaderboard.New()

	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func() {
			for i := 0; i < 50; i++ {
				b.Add("nn", result(float64(i), "a", "b", "a"))
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	require.Equal(t, 200, b.Len())

	seen := make(map[int64]bool, 200)
	for _, e := range b.Entries() {
		require.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
}
