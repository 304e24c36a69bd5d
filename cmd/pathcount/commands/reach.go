package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcount/bfs"
)

// reachReport is the YAML summary printed by reach.
type reachReport struct {
	Reachable bool     `yaml:"reachable"`
	Hops      int      `yaml:"hops,omitempty"`
	Path      []string `yaml:"path,omitempty"`
}

func newReachCmd(opts *globalOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Check whether one vertex can reach another",
		Long: `Report whether any directed walk leads from --from to --to, and the
shortest such walk. Works on cyclic inputs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGraph(cmd, true)
			if err != nil {
				return err
			}

			var report reachReport
			if g.HasVertex(from) {
				res, err := bfs.BFS(g, from, bfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				if path := res.PathTo(to); path != nil {
					report = reachReport{Reachable: true, Hops: res.Depth[to], Path: path}
				}
			}

			data, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin vertex (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination vertex (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
