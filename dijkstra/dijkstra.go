// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// It processes nodes in order of increasing distance using a min-heap priority
// queue, relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Multiple sources are seeded at distance 0, which is equivalent to a virtual
//     super-source joined to each of them by a zero-weight edge.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by node index, so repeated queries return identical paths.
//   - A sum dist[u]+w that would overflow int64 is treated as Infinity.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ShortestPath returns the shortest distance from source to target and one
// path achieving it, source and target inclusive.
//
// If target is unreachable, distance is Infinity and path is nil; this is not an error.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. source and target must be in [0, N) (ErrNodeOutOfRange).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func ShortestPath(g *core.Graph, source, target int, opts ...Option) (int64, []int, error) {
	cfg, err := prepare(g, []int{source}, []int{target}, opts)
	if err != nil {
		return 0, nil, err
	}
	res := execute(g, []int{source}, cfg)
	if !res.Reachable(target) {
		return Infinity, nil, nil
	}

	return res.Dist[target], res.PathTo(target), nil
}

// MultiSourceDistance returns the shortest distance from the nearest of
// sources to target, or Infinity if none of them reaches it.
//
// sources must be non-empty (ErrNoSources); duplicates are harmless.
// Validation otherwise matches ShortestPath.
func MultiSourceDistance(g *core.Graph, sources []int, target int, opts ...Option) (int64, error) {
	cfg, err := prepare(g, sources, []int{target}, opts)
	if err != nil {
		return 0, err
	}

	return execute(g, sources, cfg).Distance(target), nil
}

// Run computes full distance and predecessor tables from every node in sources.
// Result.PathTo and Result.Origin recover paths, including for multiple sources.
func Run(g *core.Graph, sources []int, opts ...Option) (*Result, error) {
	cfg, err := prepare(g, sources, nil, opts)
	if err != nil {
		return nil, err
	}

	return execute(g, sources, cfg), nil
}

// prepare applies opts and validates every input. Run has no target and passes nil targets;
// NoNode is a result sentinel, never a valid query target.
func prepare(g *core.Graph, sources, targets []int, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}
	if g == nil {
		return cfg, ErrNilGraph
	}
	if len(sources) == 0 {
		return cfg, ErrNoSources
	}
	n := g.Len()
	for _, s := range sources {
		if s < 0 || s >= n {
			return cfg, fmt.Errorf("%w: source %d not in [0, %d)", ErrNodeOutOfRange, s, n)
		}
	}
	for _, t := range targets {
		if t < 0 || t >= n {
			return cfg, fmt.Errorf("%w: target %d not in [0, %d)", ErrNodeOutOfRange, t, n)
		}
	}
	if arc, found := g.NegativeEdge(); found {
		return cfg, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, arc.From, arc.To, arc.Weight)
	}

	return cfg, nil
}

// execute runs the validated query and returns its tables.
func execute(g *core.Graph, sources []int, cfg Options) *Result {
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(sources)
	r.process()

	return &Result{Dist: r.dist, Prev: r.prev}
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within a query
	options Options
	dist    []int64 // node → current best distance
	prev    []int   // node → predecessor on the best path
	visited []bool  // node → distance finalized
	pq      nodePQ
}

// init sets every distance to Infinity and seeds the heap with each source at 0.
func (r *runner) init(sources []int) {
	// 1) Every node starts unreached
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = NoNode
	}
	// 2) Seed the heap; a virtual super-source reaches each source at 0
	heap.Init(&r.pq)
	for _, s := range sources {
		if r.dist[s] == 0 {
			continue // duplicate source
		}
		r.dist[s] = 0
		heap.Push(&r.pq, nodeItem{id: s, dist: 0})
	}
}

// process is the core loop. It repeatedly extracts the node with the minimum
// distance and relaxes its outgoing edges, until the heap is empty or the
// smallest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the closest pending node
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) Skip stale entries: a shorter distance was already finalized
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		// 3) Everything left is farther than MaxDistance
		if item.dist > r.options.MaxDistance {
			break
		}
		// 4) Finalize u and relax its edges
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the distances of u's neighbors through u.
// Assumes r.dist[u] is finalized and finite.
func (r *runner) relax(u int) {
	// u came off the heap, so it is a valid index
	edges, _ := r.g.Neighbors(u)
	du := r.dist[u]
	for _, e := range edges {
		// 1) Impassable edge
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		// 2) du + w would overflow: the neighbor stays out of reach through u
		if e.Weight > Infinity-du {
			continue
		}
		// 3) Beyond the cutoff or no improvement
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[e.To] {
			continue
		}
		// 4) Record the better path and queue the neighbor
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
