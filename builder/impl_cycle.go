// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_cycle.go - Cycle(n): Path(n) plus the closing edge (n-1)–0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addNodes(g, n)
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
