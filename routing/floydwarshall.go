package routing

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// FloydWarshall computes all-pairs shortest distances.
//
// Contract:
//   - dist[i][j] is the shortest distance i→j, dijkstra.Infinity for "no path".
//   - The diagonal is 0; parallel edges collapse to the cheapest.
//   - Negative weights fail with dijkstra.ErrNegativeWeight, matching the single-source query.
//
// Determinism:
//   - Loop order is fixed (k → i → j) with strict improvement only.
//
// Complexity: Time O(V³), Space O(V²).
func FloydWarshall(g *core.Graph) ([][]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if arc, found := g.NegativeEdge(); found {
		return nil, fmt.Errorf("%w: edge %d→%d weight=%d", dijkstra.ErrNegativeWeight, arc.From, arc.To, arc.Weight)
	}

	n := g.Len()
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = dijkstra.Infinity
			}
		}
	}
	for _, a := range g.Edges() {
		if a.Weight < dist[a.From][a.To] {
			dist[a.From][a.To] = a.Weight
		}
	}

	var ik, kj int64
	for k := 0; k < n; k++ {
		rowK := dist[k]
		for i := 0; i < n; i++ {
			ik = dist[i][k]
			if ik == dijkstra.Infinity {
				continue
			}
			rowI := dist[i]
			for j := 0; j < n; j++ {
				kj = rowK[j]
				if kj == dijkstra.Infinity || kj > dijkstra.Infinity-ik {
					continue
				}
				if ik+kj < rowI[j] {
					rowI[j] = ik + kj
				}
			}
		}
	}

	return dist, nil
}
