// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_grid.go - Grid(rows, cols): row-major cells, each joined to its right
// and bottom neighbor. Cell (r, c) is node base + r*cols + c.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for the rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := addNodes(g, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
