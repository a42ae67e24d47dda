// Package cli implements the knightmoves command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightmoves/internal/config"
)

// ErrChecksFailed is returned by `check` when at least one scenario fails.
var ErrChecksFailed = errors.New("cli: scenario checks failed")

// globalFlags holds persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "knightmoves",
		Short: "Shortest knight paths on an unbounded board",
		Long: `knightmoves computes the minimum number of knight moves between two squares
of an unbounded board and reconstructs one shortest path.

Examples:
  knightmoves distance --from 0,0 --to 7,7
  knightmoves path --from=-2,-1 --to 4,5
  knightmoves valid --pos 7,8 --size 8
  knightmoves check
  knightmoves serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format override (text, json)")

	root.AddCommand(
		newCheckCmd(g),
		newDistanceCmd(),
		newPathCmd(),
		newValidCmd(),
		newServeCmd(g),
	)

	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

// load reads the config file and applies logging overrides.
func (g *globalFlags) load() (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}

	return cfg, cfg.Validate()
}

// newLogger builds the slog logger described by cfg, writing to w.
func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: log.format %q", config.ErrInvalidConfig, cfg.Format)
	}
}
