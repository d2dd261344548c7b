// Package routing builds all-pairs views on top of the single-query shortest
// path in package dijkstra.
//
//   - FloydWarshall: dense all-pairs distance matrix, O(V³), for small graphs
//     and as an independent check of Dijkstra.
//   - NextHops: for every (from, to) pair, the first node to step to on a
//     shortest path. One Dijkstra query per source, run concurrently over the
//     shared read-only graph.
//   - Table.Route: walks next hops to recover a full route.
package routing

import (
	"errors"
	"fmt"
	"runtime"
)

// NoHop marks a destination unreachable from a source in a Table.
const NoHop = -1

// Sentinel errors for routing operations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrBadWorkers indicates WithWorkers received a value below 1.
	ErrBadWorkers = errors.New("routing: workers must be at least 1")

	// ErrNodeOutOfRange indicates Route received an index outside the table.
	ErrNodeOutOfRange = errors.New("routing: node index out of range")

	// ErrNoRoute indicates the destination cannot be reached.
	ErrNoRoute = errors.New("routing: no route")

	// ErrRouteLoop indicates next hops revisit a node before reaching the destination.
	ErrRouteLoop = errors.New("routing: next hops form a loop")
)

// Options configures NextHops.
type Options struct {
	// Workers bounds the number of concurrent single-source queries.
	Workers int

	err error
}

// Option is a functional option for NextHops.
type Option func(*Options)

// DefaultOptions uses one worker per CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}

// WithWorkers sets the concurrency bound; n < 1 fails with ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadWorkers, n)
			return
		}
		o.Workers = n
	}
}

// Table[from][to] is the node after from on a shortest path to to,
// from itself when from == to, and NoHop when to is unreachable.
type Table [][]int

// Route follows next hops from from to to and returns the visited nodes, both ends included.
func (t Table) Route(from, to int) ([]int, error) {
	n := len(t)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: %d→%d with %d nodes", ErrNodeOutOfRange, from, to, n)
	}
	route := []int{from}
	for cur := from; cur != to; {
		next := t[cur][to]
		if next == NoHop {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoRoute, from, to)
		}
		if len(route) > n {
			return nil, fmt.Errorf("%w: %d→%d", ErrRouteLoop, from, to)
		}
		route = append(route, next)
		cur = next
	}

	return route, nil
}
