// Package commands implements the pathcount cobra command tree.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcount/core"
	"github.com/katalvlaran/pathcount/loader"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	input   string
	verbose bool
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "pathcount",
		Short: "Count walks in a directed acyclic graph",
		Long: `pathcount - count directed walks between labelled vertices.

The input has one record per line:

  LABEL: DEST1 DEST2 ...

Every label becomes a vertex and every destination an edge from LABEL.

Examples:
  # Walks from you to out
  pathcount count -i input.txt --from you --to out

  # Walks from svr to out that visit fft and then dac
  pathcount count -i input.txt --from svr --to out --via fft,dac

  # Run the default queries, or those of a config file
  pathcount run -i input.txt
  pathcount run -i input.txt -c queries.yaml -q waypoints`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "input file ('-' for stdin)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newCountCmd(opts),
		newRunCmd(opts),
		newCheckCmd(opts),
		newReachCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// logger returns a text logger on the command's stderr.
func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadGraph reads the input records and builds the graph.
func (o *globalOptions) loadGraph(cmd *cobra.Command, directed bool) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if o.input != "-" {
		f, err := os.Open(o.input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	log := o.logger(cmd)
	g, err := loader.Load(r, core.WithDirected(directed), core.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug("graph loaded",
		"input", o.input,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}
