// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_complete.go - Complete(n): every pair i<j joined once, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addNodes(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
