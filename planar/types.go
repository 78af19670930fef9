// Package planar defines the coordinate graph model shared by every
// tourlab component: Node, Edge, and Graph, plus deep-clone and
// node-editing primitives.
//
// A planar.Graph is an order-preserving sequence of nodes (insertion order
// is significant: deterministic heuristics break ties by it) together with
// a derived edge list used only to display the last computed tour.
//
// Concurrency: Graph is not synchronized. A graph handed to a solver must
// be treated as a value — use Clone before crossing an execution-context
// boundary so the worker can never mutate caller-visible state.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrDuplicateNodeID - a node with the same ID is already present.
//	ErrNodeNotFound    - requested node does not exist.
package planar

import "errors"

// Sentinel errors for graph construction and editing.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("planar: node ID is empty")

	// ErrDuplicateNodeID indicates an AddNode with an ID already present.
	ErrDuplicateNodeID = errors.New("planar: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("planar: node not found")
)

// Node is a single 2D point of a graph.
//
// ID uniquely identifies the node within its Graph and is stable across
// edits. Attrs is an open passthrough bag (e.g. a display name): it is
// preserved verbatim and never interpreted by any algorithm.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string `json:"id" yaml:"id"`

	// X, Y are the node's planar coordinates.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`

	// Attrs stores arbitrary user data. Deep-copied by Graph.Clone.
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Edge references two graph-owned nodes by ID. Edges exist purely for
// displaying the last computed tour; they carry no weight of their own
// (the metric is always Euclidean over node coordinates).
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Graph is an order-preserving node sequence plus a derived edge list.
//
// Invariant: every Edge endpoint references a node currently present in
// the node sequence. RemoveNode does not touch edges; callers prune stale
// edges explicitly via PruneEdges (mirrors the UI collaborator contract).
type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int // node ID -> position in nodes
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// FromNodes builds a Graph from the given nodes, preserving order.
// Returns ErrEmptyNodeID or ErrDuplicateNodeID on invalid input.
//
// Complexity: O(n).
func FromNodes(nodes []Node) (*Graph, error) {
	g := NewGraph()
	for i := range nodes {
		if err := g.AddNode(nodes[i]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddNode appends a node to the sequence.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.index[n.ID]; ok {
		return ErrDuplicateNodeID
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// ReplaceNode swaps the node record with the same ID in place, keeping its
// position in the sequence. This is the edit primitive behind coordinate
// drags in the UI collaborator: nodes are immutable values, edits replace.
func (g *Graph) ReplaceNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	pos, ok := g.index[n.ID]
	if !ok {
		return ErrNodeNotFound
	}
	g.nodes[pos] = n

	return nil
}

// RemoveNode deletes the node with the given ID, preserving the relative
// order of the remainder. Stale edges are the caller's to prune.
//
// Complexity: O(n) (sequence compaction + index rebuild).
func (g *Graph) RemoveNode(id string) error {
	pos, ok := g.index[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.nodes = append(g.nodes[:pos], g.nodes[pos+1:]...)
	delete(g.index, id)
	// Reindex the shifted suffix.
	for i := pos; i < len(g.nodes); i++ {
		g.index[g.nodes[i].ID] = i
	}

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, error) {
	pos, ok := g.index[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return g.nodes[pos], nil
}

// Nodes returns a copy of the node sequence in insertion order.
// The copy is shallow with respect to Attrs; use Clone for full isolation.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Len reports the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// SetEdges replaces the derived edge list (typically with the edges of the
// last computed tour). Endpoints referencing unknown nodes are rejected.
func (g *Graph) SetEdges(edges []Edge) error {
	for i := range edges {
		if _, ok := g.index[edges[i].From]; !ok {
			return ErrNodeNotFound
		}
		if _, ok := g.index[edges[i].To]; !ok {
			return ErrNodeNotFound
		}
	}
	g.edges = append(g.edges[:0:0], edges...)

	return nil
}

// Edges returns a copy of the derived edge list.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// PruneEdges drops edges whose endpoints no longer exist and reports how
// many were removed. Restores the edge invariant after RemoveNode.
//
// Complexity: O(|E|).
func (g *Graph) PruneEdges() int {
	kept := g.edges[:0]
	for _, e := range g.edges {
		if _, ok := g.index[e.From]; !ok {
			continue
		}
		if _, ok := g.index[e.To]; !ok {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(g.edges) - len(kept)
	g.edges = kept

	return removed
}

// Clone returns a deep, non-aliased copy of the graph: nodes, edges, and
// every Attrs bag. A nil receiver clones to nil.
//
// This is the copy that crosses the runner's execution-context boundary;
// nothing the worker does to the clone can reach the caller's graph.
//
// Complexity: O(n + |E| + total attrs).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	cp := &Graph{
		nodes: make([]Node, len(g.nodes)),
		edges: append([]Edge(nil), g.edges...),
		index: make(map[string]int, len(g.index)),
	}
	for i := range g.nodes {
		cp.nodes[i] = g.nodes[i]
		cp.nodes[i].Attrs = cloneAttrs(g.nodes[i].Attrs)
		cp.index[g.nodes[i].ID] = i
	}

	return cp
}

// cloneAttrs deep-copies one attribute bag. Nested maps and slices are
// copied recursively; scalar values are copied as-is.
func cloneAttrs(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAttrs(t)
	case []any:
		cp := make([]any, len(t))
		for i := range t {
			cp[i] = cloneValue(t[i])
		}

		return cp
	default:
		return v
	}
}
