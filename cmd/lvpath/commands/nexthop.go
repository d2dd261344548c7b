package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/graphio"
	"github.com/katalvlaran/lvpath/routing"
)

func newNextHopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nexthop <graph-file>",
		Short: "Print the next-hop routing table of a graph",
		Long: `Row i lists, for every destination j, the node to step to from i on a
shortest path to j. "-" marks an unreachable destination.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			table, err := routing.NextHops(cmd.Context(), g, routing.WithWorkers(a.cfg.Workers))
			if err != nil {
				return err
			}
			a.logger.Debug().Int("nodes", len(table)).Int("workers", a.cfg.Workers).Msg("next-hop table built")

			out := cmd.OutOrStdout()
			for from, row := range table {
				cells := make([]string, len(row))
				for to, hop := range row {
					if hop == routing.NoHop {
						cells[to] = "-"
					} else {
						cells[to] = strconv.Itoa(hop)
					}
				}
				if _, err := fmt.Fprintf(out, "%d: %s\n", from, strings.Join(cells, " ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
