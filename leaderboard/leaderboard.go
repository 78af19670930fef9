// Package leaderboard keeps the in-memory comparison table of completed
// runs. Entries are created only on successful completion, never mutated
// afterwards, and removed only by a bulk Clear.
//
// The board stores snapshots: adding copies the tour, listing copies the
// entries, so callers can never reach the board's internals. Summary
// statistics ride on gonum's stat package.
package leaderboard

import (
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vkarel/tourlab/planar"
	"github.com/vkarel/tourlab/solver"
)

// Entry is one immutable leaderboard row.
type Entry struct {
	// ID is monotonic and unique within a Board's lifetime.
	ID int64

	// Algorithm is the catalogue key of the producing heuristic.
	Algorithm string

	// Perf is the performance snapshot of the run.
	Perf solver.Performance

	// Path is the closed tour snapshot.
	Path []planar.Node

	// CreatedAt is the entry creation timestamp.
	CreatedAt time.Time
}

// Summary aggregates distances across a set of entries.
type Summary struct {
	Count        int
	BestDistance float64
	MeanDistance float64
	StdDev       float64
}

// Board is a concurrency-safe leaderboard.
type Board struct {
	mu      sync.Mutex
	nextID  int64
	entries []Entry
	now     func() time.Time
}

// New returns an empty Board.
func New() *Board {
	return &Board{now: time.Now}
}

// Add records a successful run and returns the stored entry snapshot.
// The tour is copied; later caller mutations cannot reach the board.
func (b *Board) Add(algorithm string, res solver.Result) Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	e := Entry{
		ID:        b.nextID,
		Algorithm: algorithm,
		Perf:      res.Perf,
		Path:      append([]planar.Node(nil), res.Path...),
		CreatedAt: b.now(),
	}
	b.entries = append(b.entries, e)

	return e
}

// Entries returns the rows in insertion order. The slice is a copy.
func (b *Board) Entries() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]Entry(nil), b.entries...)
}

// Ranked returns the rows sorted by distance ascending (ties by ID, so
// earlier runs rank first). The slice is a copy.
func (b *Board) Ranked() []Entry {
	out := b.Entries()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Perf.Distance != out[j].Perf.Distance {
			return out[i].Perf.Distance < out[j].Perf.Distance
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// Best returns the shortest-distance entry and whether the board is
// non-empty.
func (b *Board) Best() (Entry, bool) {
	ranked := b.Ranked()
	if len(ranked) == 0 {
		return Entry{}, false
	}

	return ranked[0], true
}

// Len reports the number of entries.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.entries)
}

// Clear removes every entry. IDs keep increasing across clears, so an
// entry ID never repeats within a Board's lifetime.
func (b *Board) Clear() {
	b.mu.Lock()
	b.entries = nil
	b.mu.Unlock()
}

// Summarize aggregates distances over all entries, or over a single
// algorithm when name is non-empty.
func (b *Board) Summarize(name string) Summary {
	entries := b.Entries()

	var dists []float64
	for _, e := range entries {
		if name != "" && e.Algorithm != name {
			continue
		}
		dists = append(dists, e.Perf.Distance)
	}
	if len(dists) == 0 {
		return Summary{}
	}

	best := dists[0]
	for _, d := range dists[1:] {
		if d < best {
			best = d
		}
	}

	s := Summary{
		Count:        len(dists),
		BestDistance: best,
		MeanDistance: stat.Mean(dists, nil),
	}
	if len(dists) > 1 {
		s.StdDev = stat.StdDev(dists, nil)
	}

	return s
}
