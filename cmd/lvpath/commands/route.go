package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
)

func newRouteCmd(a *app) *cobra.Command {
	var from, to int
	var sources []int

	cmd := &cobra.Command{
		Use:   "route <graph-file>",
		Short: "Print the shortest distance and path between two nodes",
		Long: `Load a graph (edge list, or YAML for .yaml/.yml) and run a shortest-path query.
With --sources the distance is taken from the nearest of several start nodes.`,
		Example: `  lvpath route roads.txt --from 0 --to 4
  lvpath route roads.yaml --sources 0,5 --to 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug().Str("file", args[0]).Int("nodes", g.Len()).Int("arcs", g.EdgeCount()).Msg("graph loaded")

			if !cmd.Flags().Changed("sources") {
				if !cmd.Flags().Changed("from") {
					return errors.New("route: --from or --sources is required")
				}
				sources = []int{from}
			}
			d, path, err := query(g, sources, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if d == dijkstra.Infinity {
				_, err = fmt.Fprintln(out, "distance: unreachable")
				return err
			}

			return printRoute(out, d, path)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "source node")
	cmd.Flags().IntVar(&to, "to", 0, "target node")
	cmd.Flags().IntSliceVar(&sources, "sources", nil, "comma-separated source nodes (overrides --from)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// query answers the route with a single Dijkstra run: ShortestPath for one
// source, otherwise Run with the target checked up front.
func query(g *core.Graph, sources []int, to int) (int64, []int, error) {
	if len(sources) == 1 {
		return dijkstra.ShortestPath(g, sources[0], to)
	}
	if !g.HasNode(to) {
		return 0, nil, fmt.Errorf("%w: target %d not in [0, %d)", dijkstra.ErrNodeOutOfRange, to, g.Len())
	}
	res, err := dijkstra.Run(g, sources)
	if err != nil {
		return 0, nil, err
	}

	return res.Distance(to), res.PathTo(to), nil
}

func printRoute(w io.Writer, d int64, path []int) error {
	hops := make([]string, len(path))
	for i, v := range path {
		hops[i] = strconv.Itoa(v)
	}
	_, err := fmt.Fprintf(w, "distance: %d\npath: %s\n", d, strings.Join(hops, " -> "))

	return err
}
