// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from one or more source nodes to all
// other reachable nodes in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of nodes to explore and
// relaxes edges in increasing order of distance from the sources.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |nodes|, E = |edges|
//	   • Each node is finalized at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor tables.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; nodes beyond stay at Infinity.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrInvalidInput      category: bad arguments (every error below except ErrNegativeWeight).
//	– ErrUnsupportedInput  category: a graph outside the algorithm's contract.
//	– ErrNilGraph          the graph pointer is nil.
//	– ErrNodeOutOfRange    a source or target index is outside [0, N).
//	– ErrNoSources         the source set is empty.
//	– ErrNegativeWeight    a negative edge weight is present (wraps ErrUnsupportedInput).
//	– ErrBadMaxDistance    MaxDistance < 0.
//	– ErrBadInfThreshold   InfEdgeThreshold <= 0.
//
// An unreachable target is not an error: its distance is Infinity and it has no path.
//
// Example usage:
//
//	dist, path, err := dijkstra.ShortestPath(g, 0, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if dist == dijkstra.Infinity {
//	    fmt.Println("unreachable")
//	}
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance of a node that no source reaches.
const Infinity int64 = math.MaxInt64

// NoNode marks an absent predecessor or origin.
const NoNode = -1

// Error categories.
var (
	// ErrInvalidInput groups errors caused by malformed arguments.
	ErrInvalidInput = errors.New("dijkstra: invalid input")

	// ErrUnsupportedInput groups errors caused by graphs the algorithm cannot handle.
	ErrUnsupportedInput = errors.New("dijkstra: unsupported input")
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrInvalidInput)

	// ErrNodeOutOfRange indicates a source or target index outside [0, N).
	ErrNodeOutOfRange = fmt.Errorf("%w: node index out of range", ErrInvalidInput)

	// ErrNoSources indicates that the multi-source form received no sources.
	ErrNoSources = fmt.Errorf("%w: no source nodes", ErrInvalidInput)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight encountered", ErrUnsupportedInput)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = fmt.Errorf("%w: MaxDistance must be non-negative", ErrInvalidInput)

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = fmt.Errorf("%w: InfEdgeThreshold must be positive", ErrInvalidInput)
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes farther than this stay at Infinity. Default Infinity (no cap).
// InfEdgeThreshold – edges with weight ≥ this are skipped. Default Infinity (none skipped).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64

	// first invalid option, surfaced by the entry points
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed max are not explored.
// A negative max makes the call fail with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. A threshold ≤ 0 makes the call fail with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// Result holds the tables of one completed query.
//
// Dist[v] is the shortest distance from the nearest source (Infinity if
// unreachable). Prev[v] is v's predecessor on that path, NoNode for sources
// and unreachable nodes.
type Result struct {
	Dist []int64
	Prev []int
}

// Distance returns the distance to v, or Infinity when v is unreachable or out of range.
func (r *Result) Distance(v int) int64 {
	if v < 0 || v >= len(r.Dist) {
		return Infinity
	}

	return r.Dist[v]
}

// Reachable reports whether some source reaches v.
func (r *Result) Reachable(v int) bool {
	return r.Distance(v) != Infinity
}

// PathTo reconstructs the path ending at v, starting at the source it was reached from.
// Returns nil if v is unreachable or out of range.
func (r *Result) PathTo(v int) []int {
	if !r.Reachable(v) {
		return nil
	}
	path := []int{}
	for cur := v; cur != NoNode; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// reverse to get source → v
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Origin returns the source a shortest path to v starts from, or NoNode if v is unreachable.
func (r *Result) Origin(v int) int {
	if !r.Reachable(v) {
		return NoNode
	}
	for r.Prev[v] != NoNode {
		v = r.Prev[v]
	}

	return v
}
