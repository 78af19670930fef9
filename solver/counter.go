package solver

// coordReadsPerDistance is the fixed read cost booked per Euclidean
// distance evaluation: the four coordinate reads (a.X, a.Y, b.X, b.Y).
const coordReadsPerDistance = 4

// Counter tallies logical read and write operations across one solve
// call tree. It is purely comparative instrumentation: counts never feed
// back into control flow, are never reset mid-run, and each solve call
// owns exactly one Counter — never share one across concurrent runs.
//
// Counter is unsynchronized: each instance is confined to a single call
// tree, so plain int64 fields suffice.
// All methods are nil-safe so helpers may skip counting when no counter
// is threaded through.
type Counter struct {
	reads  int64
	writes int64
}

// NewCounter returns a zeroed Counter.
func NewCounter() *Counter { return &Counter{} }

// AddReads books n logical read operations.
func (c *Counter) AddReads(n int64) {
	if c == nil {
		return
	}
	c.reads += n
}

// AddWrites books n logical write operations.
func (c *Counter) AddWrites(n int64) {
	if c == nil {
		return
	}
	c.writes += n
}

// Reads reports the accumulated read count.
func (c *Counter) Reads() int64 {
	if c == nil {
		return 0
	}

	return c.reads
}

// Writes reports the accumulated write count.
func (c *Counter) Writes() int64 {
	if c == nil {
		return 0
	}

	return c.writes
}
