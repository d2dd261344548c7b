package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	startCell = 'S'
	endCell   = 'E'
	maxHeight = 'z' - 'a'
)

// Heightmap is a parsed elevation grid: 'a'..'z' map to heights 0..25,
// 'S' marks the start (height 0) and 'E' the end (height 25).
type Heightmap struct {
	Grid  *GridGraph
	Start int
	End   int
	// LowPoints lists every height-0 cell in row-major order, Start included.
	LowPoints []int
}

// ParseHeightmap parses one grid row per line.
//
// Errors:
//   - ErrEmptyGrid / ErrNonRectangular for malformed shapes.
//   - ErrBadCell for any other character, reported with its position.
//   - ErrMissingStart / ErrMissingEnd when 'S' or 'E' is absent.
//
// When 'S' or 'E' repeats, the last occurrence in row-major order wins.
func ParseHeightmap(lines []string) (*Heightmap, error) {
	values := make([][]int, len(lines))
	start, end := -1, -1
	var low []int
	width := 0
	if len(lines) > 0 {
		width = len(lines[0])
	}
	for y, line := range lines {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			idx := y*width + x
			switch {
			case c == startCell:
				row[x] = 0
				start = idx
			case c == endCell:
				row[x] = maxHeight
				end = idx
			case c >= 'a' && c <= 'z':
				row[x] = int(c - 'a')
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadCell, c, y, x)
			}
			if row[x] == 0 {
				low = append(low, idx)
			}
		}
		values[y] = row
	}

	grid, err := NewGridGraph(values, DefaultGridOptions())
	if err != nil {
		return nil, err
	}
	if start < 0 {
		return nil, ErrMissingStart
	}
	if end < 0 {
		return nil, ErrMissingEnd
	}

	return &Heightmap{Grid: grid, Start: start, End: end, LowPoints: low}, nil
}

// Height returns the elevation of the cell at row-major index idx.
func (hm *Heightmap) Height(idx int) int {
	return hm.Grid.Value(idx)
}

// ClimbGraph returns the graph of legal moves: a step a→b to an orthogonal
// neighbor is allowed iff height(b) <= height(a)+1. Descents are unrestricted.
func (hm *Heightmap) ClimbGraph() *core.Graph {
	return hm.Grid.ToGraph(func(from, to int) bool {
		return hm.Height(to) <= hm.Height(from)+1
	})
}
