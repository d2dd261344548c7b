// Package hillclimb solves the heightmap climb: the fewest steps from 'S' to
// 'E' (part 1) and from the best low point to 'E' (part 2), where each step
// may climb at most one unit.
package hillclimb

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/internal/config"
)

// Unreachable is printed when 'E' cannot be reached.
const Unreachable = "unreachable"

// ErrNotParsed indicates a part was solved before Parse succeeded.
var ErrNotParsed = errors.New("hillclimb: input not parsed")

// Solver implements runner.Solver. Algorithm selects config.AlgorithmDijkstra
// (the default when empty) or config.AlgorithmBFS; both give the same answers.
type Solver struct {
	Algorithm string

	hm    *gridgraph.Heightmap
	climb *core.Graph
}

// New returns a Solver using algorithm.
func New(algorithm string) *Solver {
	return &Solver{Algorithm: algorithm}
}

// Parse reads the heightmap and builds its climb graph.
func (s *Solver) Parse(lines []string) error {
	switch s.Algorithm {
	case "", config.AlgorithmDijkstra, config.AlgorithmBFS:
	default:
		return fmt.Errorf("hillclimb: unknown algorithm %q", s.Algorithm)
	}
	hm, err := gridgraph.ParseHeightmap(lines)
	if err != nil {
		return err
	}
	s.hm = hm
	s.climb = hm.ClimbGraph()

	return nil
}

// Part1 returns the fewest steps from the start cell.
func (s *Solver) Part1() (string, error) {
	if s.hm == nil {
		return "", ErrNotParsed
	}
	if s.Algorithm == config.AlgorithmBFS {
		return s.bfsSteps([]int{s.hm.Start})
	}

	d, _, err := dijkstra.ShortestPath(s.climb, s.hm.Start, s.hm.End)
	if err != nil {
		return "", err
	}

	return formatSteps(d), nil
}

// Part2 returns the fewest steps from any height-0 cell.
func (s *Solver) Part2() (string, error) {
	if s.hm == nil {
		return "", ErrNotParsed
	}
	if s.Algorithm == config.AlgorithmBFS {
		return s.bfsSteps(s.hm.LowPoints)
	}

	d, err := dijkstra.MultiSourceDistance(s.climb, s.hm.LowPoints, s.hm.End)
	if err != nil {
		return "", err
	}

	return formatSteps(d), nil
}

func (s *Solver) bfsSteps(sources []int) (string, error) {
	res, err := bfs.BFS(s.climb, sources)
	if err != nil {
		return "", err
	}
	if d := res.Depth[s.hm.End]; d != bfs.Unreached {
		return strconv.Itoa(d), nil
	}

	return Unreachable, nil
}

func formatSteps(d int64) string {
	if d == dijkstra.Infinity {
		return Unreachable
	}

	return strconv.FormatInt(d, 10)
}
