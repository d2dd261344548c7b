// SPDX-License-Identifier: MIT
// Package builder generates canonical *core.Graph topologies for benchmarks,
// tests and the "lvpath gen" command.
//
// A Constructor appends its nodes after those already in the graph, so several
// constructors passed to BuildGraph produce disjoint components:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Grid(3, 4), builder.RandomSparse(10, 0.2))
//
// Topologies: Path, Cycle, Star, Complete, Grid, RandomSparse.
// Edges are undirected (two arcs) unless WithDirected is given.
// Weights come from the configured WeightFn (constant 1 by default).
//
// Determinism: node order and edge emission order are fixed per constructor;
// with a fixed seed the same graph is produced every time.
package builder
