package routing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// NextHops builds the next-hop Table of g with one dijkstra.Run per source.
//
// Queries run on at most Options.Workers goroutines; each owns its tables and
// only reads g, so g must not be mutated until NextHops returns.
// The first failing query (or ctx cancellation) aborts the rest.
func NextHops(ctx context.Context, g *core.Graph, opts ...Option) (Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.Len()
	table := make(Table, n)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for s := 0; s < n; s++ {
		s := s
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := dijkstra.Run(g, []int{s})
			if err != nil {
				return err
			}
			table[s] = hopsFrom(res, s)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

// hopsFrom turns one source's predecessor table into its row of next hops.
func hopsFrom(res *dijkstra.Result, source int) []int {
	row := make([]int, len(res.Dist))
	for to := range row {
		switch {
		case to == source:
			row[to] = source
		case !res.Reachable(to):
			row[to] = NoHop
		default:
			row[to] = res.PathTo(to)[1]
		}
	}

	return row
}
