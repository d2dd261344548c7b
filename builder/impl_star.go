// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_star.go - Star(n): hub 0 joined to leaves 1..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with the hub at its first node.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
