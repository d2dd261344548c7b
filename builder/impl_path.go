// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_path.go - Path(n): nodes 0..n-1 joined (i-1)–i in increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addNodes(g, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
