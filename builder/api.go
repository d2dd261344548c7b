// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - Constructor type, BuildGraph entry point and shared helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor appends one topology to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph with gopts and applies each constructor in order.
//
// Errors: ErrOptionViolation for bad options, ErrConstructFailed for a nil
// constructor, otherwise the first constructor error. No partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	g := core.NewGraph(0, gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes appends n nodes and returns the index of the first.
func addNodes(g *core.Graph, n int) int {
	base := g.Len()
	g.Grow(base + n)

	return base
}

// connect adds u–v with a weight drawn from cfg.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	var err error
	if cfg.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirectedEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: edge %d-%d: %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
