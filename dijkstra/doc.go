// Package dijkstra provides Dijkstra's shortest-path algorithm over the dense,
// index-addressed core.Graph, for graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, source, target) returns the minimum distance and one path
//     achieving it, source and target inclusive.
//   - MultiSourceDistance(g, sources, target) returns the distance from the
//     nearest of several sources, as if a virtual super-source were joined to
//     each of them by a zero-weight edge.
//   - Run(g, sources) exposes the full distance and predecessor tables; its
//     Result.PathTo and Result.Origin also recover paths for multi-source queries.
//
// When to use:
//
//   - Grid and maze searches where moves have different costs.
//   - Building next-hop tables (see package routing) from one query per source.
//   - "Nearest of many starts" problems, where one multi-source run replaces
//     a query per start.
//
// Numeric semantics:
//
//   - Distances are int64. Infinity (math.MaxInt64) marks "no path".
//   - A relaxation whose sum would overflow is discarded, so such nodes
//     remain at Infinity instead of wrapping negative.
//
// Failure semantics:
//
//   - Invalid arguments fail fast with errors wrapping ErrInvalidInput.
//   - A negative edge weight anywhere in the graph fails with ErrNegativeWeight,
//     which wraps ErrUnsupportedInput. The check is an O(E) pre-scan.
//   - "Unreachable" is a valid result, not an error.
//
// Concurrency:
//
//   - Each call owns its tables and heap; the graph is only read. Any number of
//     queries may run concurrently against the same graph.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
package dijkstra
