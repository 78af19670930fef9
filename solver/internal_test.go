package solver

import (
	"context"
	"math"
	"strconv"
	"testing"

	"github.com/vkarel/tourlab/planar"
)

func TestCounter_NilSafetyAndAccumulation(t *testing.T) {
	var nilCtr *Counter
	nilCtr.AddReads(10)
	nilCtr.AddWrites(10)
	if nilCtr.Reads() != 0 || nilCtr.Writes() != 0 {
		t.Fatal("nil counter must stay zero")
	}

	c := NewCounter()
	c.AddReads(3)
	c.AddReads(4)
	c.AddWrites(1)
	if c.Reads() != 7 || c.Writes() != 1 {
		t.Fatalf("want 7/1, got %d/%d", c.Reads(), c.Writes())
	}
}

func TestInstance_DistBooksCoordinateReads(t *testing.T) {
	g, err := planar.FromNodes([]planar.Node{
		{ID: "a", X: 0, Y: 0},
		{ID: "b", X: 3, Y: 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	in := newInstance(g, NewCounter())

	if d := in.dist(0, 1); d != 5 {
		t.Fatalf("want 5, got %v", d)
	}
	if in.ctr.Reads() != coordReadsPerDistance {
		t.Fatalf("one distance books %d reads, got %d", coordReadsPerDistance, in.ctr.Reads())
	}

	in.orderLength([]int{0, 1}) // two hops: there and back
	if in.ctr.Reads() != 3*coordReadsPerDistance {
		t.Fatalf("want %d reads total, got %d", 3*coordReadsPerDistance, in.ctr.Reads())
	}
}

func TestRNG_SeedPolicy(t *testing.T) {
	// Seed 0 selects the fixed default stream: identical to itself.
	a := rngFromSeed(0)
	b := rngFromSeed(0)
	for i := 0; i < 16; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("seed 0 must be a fixed, reproducible stream")
		}
	}

	// Distinct seeds give distinct streams.
	c := rngFromSeed(1)
	d := rngFromSeed(2)
	same := true
	for i := 0; i < 16; i++ {
		if c.Int63() != d.Int63() {
			same = false

			break
		}
	}
	if same {
		t.Fatal("distinct seeds produced identical streams")
	}
}

func TestReverseSegmentInPlace(t *testing.T) {
	ctr := NewCounter()
	order := []int{0, 1, 2, 3, 4, 5}
	reverseSegmentInPlace(order, 1, 4, ctr)

	want := []int{0, 4, 3, 2, 1, 5}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("want %v, got %v", want, order)
		}
	}
	if ctr.Writes() != 4 { // two swaps, two writes each
		t.Fatalf("want 4 writes, got %d", ctr.Writes())
	}
}

func TestThreeOptImprove_TrackedLengthMatchesTour(t *testing.T) {
	const n = 8
	nodes := make([]planar.Node, n)
	for i := range nodes {
		a := 2 * math.Pi * float64(i) / n
		nodes[i] = planar.Node{
			ID: "n" + strconv.Itoa(i),
			X:  3 * math.Cos(a),
			Y:  3 * math.Sin(a),
		}
	}
	g, err := planar.FromNodes(nodes)
	if err != nil {
		t.Fatal(err)
	}
	in := newInstance(g, NewCounter())

	// A crossing-heavy start forces several accepted moves, so the
	// Δ-accumulated length that feeds the generalized pass is exercised.
	order := []int{0, 3, 1, 5, 2, 7, 4, 6}
	length, err := in.threeOptImprove(context.Background(), order, in.orderLength(order))
	if err != nil {
		t.Fatal(err)
	}
	if got := in.orderLengthUncounted(order); math.Abs(length-got) > 1e-9 {
		t.Fatalf("tracked length %v drifted from tour length %v", length, got)
	}
}

func TestCrossoverOX_AlwaysAPermutation(t *testing.T) {
	rng := rngFromSeed(3)
	n := 9
	p1 := randomPerm(n, rng)
	p2 := randomPerm(n, rng)

	for trial := 0; trial < 50; trial++ {
		child := crossoverOX(p1, p2, rng)
		if len(child) != n {
			t.Fatalf("trial %d: child length %d", trial, len(child))
		}
		seen := make([]bool, n)
		for _, v := range child {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("trial %d: not a permutation: %v", trial, child)
			}
			seen[v] = true
		}
	}
}

func TestCrossoverOX_InheritsParentSlice(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}
	rng := rngFromSeed(8)

	// Whatever window is drawn, p1's genes in that window must appear at
	// the same positions in the child.
	for trial := 0; trial < 20; trial++ {
		child := crossoverOX(p1, p2, rng)
		matched := 0
		for i := range child {
			if child[i] == p1[i] {
				matched++
			}
		}
		if matched == 0 {
			t.Fatalf("trial %d: child %v shares no positions with p1", trial, child)
		}
	}
}
