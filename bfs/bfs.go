// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing edge count from one or more start nodes,
// with an optional visit hook, depth limiting, and neighbor filtering.
// Edge weights are ignored.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from every node in starts simultaneously,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrNoSources or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, starts []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoSources
	}
	n := g.Len()
	for _, s := range starts {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrStartVertexNotFound, s, n)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}
	for _, s := range starts {
		if w.res.Depth[s] == Unreached {
			w.enqueue(s, 0, Unreached)
		}
	}

	return w.res, w.loop()
}

// enqueue records id's depth and parent and appends it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// 1) Stop promptly on cancellation
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		// 2) Dequeue and record the visit
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		// 3) Expand to the next depth
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	// 1) Respect the depth limit
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	// item.id was validated or came from an edge, so Neighbors cannot fail
	edges, _ := w.graph.Neighbors(item.id)
	// 2) Enqueue unseen neighbors that pass the filter
	for _, e := range edges {
		if w.res.Depth[e.To] != Unreached {
			continue
		}
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.enqueue(e.To, nextDepth, item.id)
	}
}
