// Package core provides the dense, index-addressed Graph used by every
// algorithm in lvpath.
//
// A Graph G = (V, E) holds N nodes identified by the integers [0, N).
// Each node owns an ordered list of outgoing edges (To, Weight); insertion
// order is preserved, so iteration is deterministic.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v, v, w) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Node lifecycle
//	NewGraph(n int, opts ...GraphOption) *Graph  // O(n)
//	AddNode() int                                 // O(1) amortized
//	Grow(n int)                                   // O(n - Len())
//	HasNode(i int) bool                           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, weight int64) error            // O(1) amortized
//	AddUndirectedEdge(a, b int, weight int64) error      // two arcs
//
//	// Query
//	Len() int                               // node count
//	EdgeCount() int                         // arc count
//	Neighbors(u int) ([]Edge, error)        // copy of u's outgoing edges
//	Edges() []Arc                           // every arc, node order then insertion order
//	NegativeEdge() (Arc, bool)              // first arc with weight < 0
//
// Weights are stored as given, including negative values: the graph is a
// plain container and leaves weight policy to the algorithms that read it.
//
// Concurrency:
//
// Mutations take a write lock and queries a read lock, so a Graph may be
// shared by any number of concurrent read-only queries once it is built.
//
// Errors:
//
//	ErrNodeOutOfRange – index outside [0, N)
//	ErrLoopNotAllowed – self-loop when loops are disabled
package core
