// Package lvpath is an index-based shortest-path toolkit.
//
// Library packages:
//
//	core       Graph: dense node indices, weighted directed edges, RWMutex-guarded
//	dijkstra   ShortestPath, MultiSourceDistance and Run (full distance/predecessor tables)
//	bfs        unit-weight multi-source breadth-first search
//	routing    Floyd–Warshall distance matrix and concurrent next-hop tables
//	gridgraph  grids and letter heightmaps as graphs
//	graphio    edge-list and YAML graph files
//	builder    generated topologies (path, cycle, star, complete, grid, random)
//	input      line and token readers over an afero filesystem
//
// The lvpath binary (cmd/lvpath) exposes the route, nexthop, hill and gen commands.
package lvpath
