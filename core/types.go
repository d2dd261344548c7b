package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeOutOfRange indicates an operation referenced an index outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an outgoing connection stored in a node's adjacency list.
type Edge struct {
	// To is the destination node index.
	To int

	// Weight is the cost of traversing the edge.
	Weight int64
}

// Arc is an Edge together with its source node, as returned by Edges.
type Arc struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a directed, weighted graph over dense node indices.
//
// adjacency[u] lists u's outgoing edges in insertion order.
// mu guards adjacency and edgeCount.
type Graph struct {
	mu sync.RWMutex

	allowLoops bool

	adjacency [][]Edge
	edgeCount int
}

// NewGraph creates a Graph with n isolated nodes. A negative n is treated as 0.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{
		adjacency: make([][]Edge, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
