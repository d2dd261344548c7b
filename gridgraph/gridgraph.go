package gridgraph

import (
	"github.com/katalvlaran/lvpath/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the (dx, dy) offsets for gg.Conn. Callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Value returns the cell value at row-major index idx.
func (gg *GridGraph) Value(idx int) int {
	x, y := gg.Coordinate(idx)

	return gg.CellValues[y][x]
}

// ToGraph converts the grid into a directed *core.Graph with one node per cell.
// Node ids are row-major indices. A unit-weight edge u→v is added for every
// in-bounds neighbor v of u for which step(u, v) holds; a nil step allows all moves.
// Edges of each node follow the order of NeighborOffsets.
// Complexity: O(W×H×d) time and memory, d = 4 or 8.
func (gg *GridGraph) ToGraph(step StepFunc) *core.Graph {
	g := core.NewGraph(gg.Width * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			u := gg.Index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) {
					continue
				}
				v := gg.Index(nx, ny)
				if step != nil && !step(u, v) {
					continue
				}
				// indices are in range by construction
				_ = g.AddEdge(u, v, 1)
			}
		}
	}

	return g
}
