// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checking, the single- and multi-source contracts,
// options, overflow handling, and agreement with a brute-force oracle.
package dijkstra_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildClassic returns the 6-node undirected graph
//
//	(0,1,7) (0,2,9) (0,5,14) (1,2,10) (1,3,15) (2,3,11) (2,5,2) (3,4,6) (4,5,9)
func buildClassic(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(6)
	edges := [][3]int64{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14}, {1, 2, 10}, {1, 3, 15},
		{2, 3, 11}, {2, 5, 2}, {3, 4, 6}, {4, 5, 9},
	}
	for _, e := range edges {
		require.NoError(t, g.AddUndirectedEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(nil, 0, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidInput)
}

func TestShortestPath_IndexOutOfRange(t *testing.T) {
	g := core.NewGraph(3)
	cases := []struct {
		name           string
		source, target int
	}{
		{"SourceTooLarge", 3, 0},
		{"SourceNegative", -1, 0},
		{"TargetTooLarge", 0, 7},
		{"TargetNegative", 0, -2},
		{"TargetMinusOne", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dist, path, err := dijkstra.ShortestPath(g, tc.source, tc.target)
			assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
			assert.ErrorIs(t, err, dijkstra.ErrInvalidInput)
			assert.Zero(t, dist)
			assert.Nil(t, path)

			_, err = dijkstra.MultiSourceDistance(g, []int{tc.source}, tc.target)
			assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
		})
	}
}

func TestShortestPath_EmptyGraph(t *testing.T) {
	_, _, err := dijkstra.ShortestPath(core.NewGraph(0), 0, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)
}

func TestShortestPath_NegativeWeight(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, -5))

	_, _, err := dijkstra.ShortestPath(g, 0, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.ErrorIs(t, err, dijkstra.ErrUnsupportedInput)
	assert.NotErrorIs(t, err, dijkstra.ErrInvalidInput)
	assert.Contains(t, err.Error(), "edge 1→2 weight=-5")

	// the scan covers the whole graph, not just what the source reaches
	_, err = dijkstra.MultiSourceDistance(g, []int{2}, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestMultiSourceDistance_Validation(t *testing.T) {
	g := core.NewGraph(2)

	_, err := dijkstra.MultiSourceDistance(g, nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNoSources)
	assert.ErrorIs(t, err, dijkstra.ErrInvalidInput)

	_, err = dijkstra.MultiSourceDistance(g, []int{0, 5}, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)

	_, err = dijkstra.MultiSourceDistance(g, []int{0}, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNodeOutOfRange)

	_, err = dijkstra.MultiSourceDistance(nil, []int{0}, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestOptions_Invalid(t *testing.T) {
	g := core.NewGraph(2)

	_, _, err := dijkstra.ShortestPath(g, 0, 1, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.ShortestPath(g, 0, 1, dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	_, err = dijkstra.Run(g, []int{0}, dijkstra.WithInfEdgeThreshold(-4))
	assert.ErrorIs(t, err, dijkstra.ErrInvalidInput)
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios.
// ------------------------------------------------------------------------

func TestShortestPath_Classic(t *testing.T) {
	g := buildClassic(t)

	dist, path, err := dijkstra.ShortestPath(g, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(20), dist)
	assert.Equal(t, []int{0, 2, 5, 4}, path)
}

func TestShortestPath_IsolatedTarget(t *testing.T) {
	g := buildClassic(t)
	isolated := g.AddNode()

	dist, path, err := dijkstra.ShortestPath(g, 0, isolated)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist)
	assert.Nil(t, path)
}

func TestShortestPath_DirectedOneWay(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 3))

	dist, _, err := dijkstra.ShortestPath(g, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist, "edges must not be walked backwards")

	dist, path, err := dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist)
	assert.Equal(t, []int{0, 1}, path)
}

func TestShortestPath_SingleNode(t *testing.T) {
	dist, path, err := dijkstra.ShortestPath(core.NewGraph(1), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist)
	assert.Equal(t, []int{0}, path)
}

func TestShortestPath_SourceEqualsTargetInCycle(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 0))

	dist, path, err := dijkstra.ShortestPath(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist)
	assert.Equal(t, []int{1}, path)
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 5))

	dist, path, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), dist)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestShortestPath_ParallelEdgesPickCheapest(t *testing.T) {
	g := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 9))
	require.NoError(t, g.AddEdge(0, 1, 4))

	dist, _, err := dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist)
}

func TestShortestPath_OverflowStaysInfinite(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, dijkstra.Infinity-1))
	require.NoError(t, g.AddEdge(1, 2, 5))

	dist, _, err := dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity-1, dist)

	dist, path, err := dijkstra.ShortestPath(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist, "sum past MaxInt64 must read as unreachable")
	assert.Nil(t, path)
}

func TestMultiSourceDistance_Classic(t *testing.T) {
	g := buildClassic(t)

	dist, err := dijkstra.MultiSourceDistance(g, []int{0, 5}, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(9), dist)

	d0, _, err := dijkstra.ShortestPath(g, 0, 4)
	require.NoError(t, err)
	d5, _, err := dijkstra.ShortestPath(g, 5, 4)
	require.NoError(t, err)
	assert.Equal(t, min(d0, d5), dist)
}

func TestMultiSourceDistance_DuplicatesAndUnreachable(t *testing.T) {
	g := buildClassic(t)
	isolated := g.AddNode()

	dist, err := dijkstra.MultiSourceDistance(g, []int{3, 3, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20), dist) // 3→2→0 = 11+9

	dist, err = dijkstra.MultiSourceDistance(g, []int{0, 1}, isolated)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Infinity, dist)

	dist, err = dijkstra.MultiSourceDistance(g, []int{isolated, 4}, isolated)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist)
}

// ------------------------------------------------------------------------
// 3. Run / Result: full tables and the multi-source path extension.
// ------------------------------------------------------------------------

func TestRun_MultiSourcePathAndOrigin(t *testing.T) {
	g := buildClassic(t)
	isolated := g.AddNode()

	res, err := dijkstra.Run(g, []int{0, 5})
	require.NoError(t, err)

	assert.Equal(t, []int{5, 4}, res.PathTo(4))
	assert.Equal(t, 5, res.Origin(4))
	assert.Equal(t, 0, res.Origin(1))
	assert.Equal(t, []int{0}, res.PathTo(0))
	assert.Equal(t, dijkstra.NoNode, res.Prev[0])

	assert.False(t, res.Reachable(isolated))
	assert.Nil(t, res.PathTo(isolated))
	assert.Equal(t, dijkstra.NoNode, res.Origin(isolated))

	assert.Equal(t, dijkstra.Infinity, res.Distance(-1))
	assert.Nil(t, res.PathTo(99))
}

func TestRun_MaxDistanceLimits(t *testing.T) {
	// Linear graph: 0-1(1)-2(1)-3(1)
	g := core.NewGraph(4)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddUndirectedEdge(i, i+1, 1))
	}

	res, err := dijkstra.Run(g, []int{0}, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, dijkstra.Infinity, dijkstra.Infinity}, res.Dist)

	res, err = dijkstra.Run(g, []int{0}, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, dijkstra.Infinity, dijkstra.Infinity, dijkstra.Infinity}, res.Dist)
}

func TestRun_InfThresholdStopsHeavyEdge(t *testing.T) {
	// 0-1(2), 1-2(4), 0-2(10), 2-3(50)
	g := core.NewGraph(4)
	require.NoError(t, g.AddUndirectedEdge(0, 1, 2))
	require.NoError(t, g.AddUndirectedEdge(1, 2, 4))
	require.NoError(t, g.AddUndirectedEdge(0, 2, 10))
	require.NoError(t, g.AddUndirectedEdge(2, 3, 50))

	res, err := dijkstra.Run(g, []int{0}, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Dist[2], "0-2(10) is impassable, 1-2(4) is not")
	assert.Equal(t, []int{0, 1, 2}, res.PathTo(2))
	assert.False(t, res.Reachable(3))
}

// ------------------------------------------------------------------------
// 4. Properties: oracle agreement, path validity, idempotence, concurrency.
// ------------------------------------------------------------------------

// randomGraph builds a reproducible directed graph with weights in [0, maxW].
func randomGraph(r *rand.Rand, n, m int, maxW int64) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_ = g.AddEdge(u, v, r.Int63n(maxW+1))
	}

	return g
}

// bellmanFord is the reference oracle: repeated relaxation until a fixed point.
func bellmanFord(g *core.Graph, source int) []int64 {
	dist := make([]int64, g.Len())
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[source] = 0
	arcs := g.Edges()
	for changed := true; changed; {
		changed = false
		for _, a := range arcs {
			if dist[a.From] == dijkstra.Infinity {
				continue
			}
			if nd := dist[a.From] + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				changed = true
			}
		}
	}

	return dist
}

// pathCost sums the cheapest arc between consecutive path nodes; ok=false if a hop has no arc.
func pathCost(g *core.Graph, path []int) (int64, bool) {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		nbrs, err := g.Neighbors(path[i])
		if err != nil {
			return 0, false
		}
		best := dijkstra.Infinity
		for _, e := range nbrs {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		if best == dijkstra.Infinity {
			return 0, false
		}
		total += best
	}

	return total, true
}

func TestShortestPath_MatchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 25; round++ {
		n := 2 + r.Intn(30)
		g := randomGraph(r, n, r.Intn(4*n), 20)
		source := r.Intn(n)
		want := bellmanFord(g, source)

		for target := 0; target < n; target++ {
			dist, path, err := dijkstra.ShortestPath(g, source, target)
			require.NoError(t, err)
			require.Equal(t, want[target], dist, "round %d %d→%d", round, source, target)
			if dist == dijkstra.Infinity {
				require.Nil(t, path)
				continue
			}
			require.Equal(t, source, path[0])
			require.Equal(t, target, path[len(path)-1])
			cost, ok := pathCost(g, path)
			require.True(t, ok, "path %v uses a missing arc", path)
			require.Equal(t, dist, cost)
		}
	}
}

func TestMultiSourceDistance_EqualsMinOfSingles(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 20; round++ {
		n := 2 + r.Intn(25)
		g := randomGraph(r, n, r.Intn(3*n), 15)
		sources := []int{r.Intn(n), r.Intn(n), r.Intn(n)}
		target := r.Intn(n)

		want := dijkstra.Infinity
		for _, s := range sources {
			d, _, err := dijkstra.ShortestPath(g, s, target)
			require.NoError(t, err)
			want = min(want, d)
		}
		got, err := dijkstra.MultiSourceDistance(g, sources, target)
		require.NoError(t, err)
		require.Equal(t, want, got, "round %d", round)
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(3)), 40, 160, 5)

	d1, p1, err := dijkstra.ShortestPath(g, 0, 39)
	require.NoError(t, err)
	d2, p2, err := dijkstra.ShortestPath(g, 0, 39)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Equal(t, p1, p2)
}

func TestShortestPath_ConcurrentQueriesShareGraph(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(11)), 60, 300, 9)
	want := make([]int64, g.Len())
	for s := range want {
		d, _, err := dijkstra.ShortestPath(g, s, 0)
		require.NoError(t, err)
		want[s] = d
	}

	var wg sync.WaitGroup
	got := make([]int64, g.Len())
	for s := range got {
		wg.Add(1)
		go func(s int) {
			defer wg.Done()
			d, _, err := dijkstra.ShortestPath(g, s, 0)
			if err == nil {
				got[s] = d
			}
		}(s)
	}
	wg.Wait()
	assert.Equal(t, want, got)
}
