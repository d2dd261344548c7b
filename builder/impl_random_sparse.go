// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi-like sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An rng is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Undirected: unordered pairs {i, j}, i < j. Directed: ordered pairs (i, j), i ≠ j.
//   - Self-loops are never sampled.
//
// Determinism: trials run i asc then j asc, so a fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that keeps each admissible edge with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addNodes(g, n)
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
