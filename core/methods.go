package core

import "fmt"

// AddNode appends an isolated node and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// Grow appends isolated nodes until the graph has at least n. It never shrinks.
// Complexity: O(n - Len()) under a single lock.
func (g *Graph) Grow(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if extra := n - len(g.adjacency); extra > 0 {
		g.adjacency = append(g.adjacency, make([][]Edge, extra)...)
	}
}

// AddEdge appends the directed edge from→to with the given weight.
//
// Parallel edges are kept; negative weights are stored as given.
// Returns ErrNodeOutOfRange if either endpoint is invalid and
// ErrLoopNotAllowed for from == to unless the graph was built WithLoops.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkIndex(from); err != nil {
		return err
	}
	if err := g.checkIndex(to); err != nil {
		return err
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// AddUndirectedEdge adds a→b and b→a with the same weight.
// Both endpoints are validated before either arc is stored.
func (g *Graph) AddUndirectedEdge(a, b int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkIndex(a); err != nil {
		return err
	}
	if err := g.checkIndex(b); err != nil {
		return err
	}
	if a == b {
		if !g.allowLoops {
			return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, a)
		}
		// a loop is its own mirror
		g.adjacency[a] = append(g.adjacency[a], Edge{To: a, Weight: weight})
		g.edgeCount++

		return nil
	}
	g.adjacency[a] = append(g.adjacency[a], Edge{To: b, Weight: weight})
	g.adjacency[b] = append(g.adjacency[b], Edge{To: a, Weight: weight})
	g.edgeCount += 2

	return nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored arcs. An undirected edge counts twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasNode reports whether i is a valid node index.
func (g *Graph) HasNode(i int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return i >= 0 && i < len(g.adjacency)
}

// Neighbors returns a copy of u's outgoing edges in insertion order.
// Complexity: O(deg(u))
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndex(u); err != nil {
		return nil, err
	}
	out := make([]Edge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Edges returns every arc ordered by source node, then insertion order.
// Complexity: O(V + E)
func (g *Graph) Edges() []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := make([]Arc, 0, g.edgeCount)
	for from, edges := range g.adjacency {
		for _, e := range edges {
			arcs = append(arcs, Arc{From: from, To: e.To, Weight: e.Weight})
		}
	}

	return arcs
}

// NegativeEdge returns the first arc (in Edges order) whose weight is negative.
func (g *Graph) NegativeEdge() (Arc, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for from, edges := range g.adjacency {
		for _, e := range edges {
			if e.Weight < 0 {
				return Arc{From: from, To: e.To, Weight: e.Weight}, true
			}
		}
	}

	return Arc{}, false
}

// checkIndex must be called with mu held.
func (g *Graph) checkIndex(i int) error {
	if i < 0 || i >= len(g.adjacency) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, i, len(g.adjacency))
	}

	return nil
}
