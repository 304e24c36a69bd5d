package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcount/dfs"
)

// checkReport is the YAML summary printed by check.
type checkReport struct {
	Vertices int  `yaml:"vertices"`
	Edges    int  `yaml:"edges"`
	Acyclic  bool `yaml:"acyclic"`
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate that the input graph is acyclic",
		Long: `Load the input, print its size and whether it is a DAG.

Walk counts are only defined on acyclic graphs; check exits non-zero and
names the offending edge when a cycle exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGraph(cmd, true)
			if err != nil {
				return err
			}
			_, cycleErr := dfs.TopologicalSort(g)

			report := checkReport{
				Vertices: g.VertexCount(),
				Edges:    g.EdgeCount(),
				Acyclic:  cycleErr == nil,
			}
			data, err := yaml.Marshal(report)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			return cycleErr
		},
	}
}
