package commands

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcount/config"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var (
		configPath string
		queryName  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the queries of a config file",
		Long: `Run every query of a YAML config and print "name: walks" for each.

Without --config the built-in queries are used:
  base       you ⇝ out
  waypoints  svr ⇝ out via fft, dac

With --query only that query runs and its count is printed alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			queries := cfg.Queries
			if queryName != "" {
				q, ok := cfg.Find(queryName)
				if !ok {
					return fmt.Errorf("unknown query %q", queryName)
				}
				queries = []config.Query{q}
			}

			g, err := opts.loadGraph(cmd, cfg.IsDirected())
			if err != nil {
				return err
			}

			results := make(yaml.MapSlice, 0, len(queries))
			for _, q := range queries {
				n, err := g.CountPathsWithWaypoints(q.From, q.To, q.Via)
				if err != nil {
					return fmt.Errorf("query %q: %w", q.Name, err)
				}
				results = append(results, yaml.MapItem{Key: q.Name, Value: n})
			}

			if queryName != "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), results[0].Value)
				return err
			}
			data, err := yaml.Marshal(results)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML query file (default: built-in queries)")
	cmd.Flags().StringVarP(&queryName, "query", "q", "", "run only this query")

	return cmd
}
