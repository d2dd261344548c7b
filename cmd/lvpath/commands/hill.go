package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/input"
	"github.com/katalvlaran/lvpath/internal/hillclimb"
	"github.com/katalvlaran/lvpath/internal/runner"
)

func newHillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hill <heightmap-file>",
		Short: "Solve a heightmap climb (fewest steps from S, and from any low point, to E)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := (&input.Reader{Fs: a.fs}).ReadLines(args[0])
			if err != nil {
				return err
			}
			r := &runner.Runner{Out: cmd.OutOrStdout(), Logger: &a.logger, Timing: a.cfg.Timing}

			return r.Run(hillclimb.New(a.cfg.Algorithm), lines)
		},
	}
}
