// Package commands wires the lvpath subcommands onto a cobra root command.
package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvpath/internal/config"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	fs      afero.Fs
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
}

// Execute runs the CLI on the real filesystem.
func Execute(ctx context.Context) error {
	return NewRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Input and config files are read from fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "lvpath",
		Short: "Shortest paths over weighted graphs and heightmaps",
		Long: `lvpath runs Dijkstra shortest-path queries on graph files
(edge list or YAML), builds next-hop routing tables, and solves heightmap climbs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $HOME/.lvpath.yaml)")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.Bool("timing", true, "print per-stage timings")
	flags.Int("workers", 0, "concurrent queries for nexthop (default: number of CPUs)")
	flags.String("algorithm", config.AlgorithmDijkstra, "hill algorithm: dijkstra or bfs")

	root.AddCommand(newRouteCmd(a), newHillCmd(a), newNextHopCmd(a), newGenCmd(a))

	return root
}

var flagKeys = map[string]string{
	"log-level": config.KeyLogLevel,
	"timing":    config.KeyTiming,
	"workers":   config.KeyWorkers,
	"algorithm": config.KeyAlgorithm,
}

// loadConfig resolves configuration for the invoked subcommand.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	v, err := config.NewViper(a.fs, a.cfgFile)
	if err != nil {
		return err
	}
	var bindErr error
	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		Level(cfg.Level()).
		With().Str("cmd", cmd.Name()).Logger()
	a.logger.Debug().
		Str("algorithm", cfg.Algorithm).
		Int("workers", cfg.Workers).
		Bool("timing", cfg.Timing).
		Msg("configuration loaded")

	return nil
}
