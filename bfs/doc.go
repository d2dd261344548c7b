// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a set of start nodes.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → distance (edges) from the nearest start, Unreached otherwise
//   - Parent: node → its predecessor in the BFS forest
//   - An OnVisit hook may abort the search with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Edge weights are ignored: every arc counts as one step.
//
// Why
//
//   - Fewest-moves searches on grids (every step costs 1) in O(V + E).
//   - A cross-check for weighted searches on unit-weight graphs.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and starts are seeded
//	in the order given, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, []int{start},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != blocked }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrNoSources            if no start node is given.
//   - ErrStartVertexNotFound  if a start index is outside the graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached node.
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
