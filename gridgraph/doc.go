// Package gridgraph treats a 2D grid of cells as a graph for the path
// queries in packages dijkstra and bfs.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with 4- or 8-connectivity.
//   - ToGraph converts it to a directed *core.Graph; a StepFunc decides which
//     neighbor moves become edges. Node ids are row-major cell indices.
//   - Heightmap parses a letter elevation map ('a'..'z', 'S' start, 'E' end)
//     and ClimbGraph keeps only moves that climb at most one unit.
//
// Complexity:
//
//   - NewGridGraph:   O(W×H), Memory: O(W×H).
//   - ToGraph:        O(W×H×d), Memory: O(W×H×d)   (d = number of neighbors, 4 or 8).
//   - ParseHeightmap: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell, ErrMissingStart, ErrMissingEnd: malformed heightmap.
package gridgraph
