package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountCmd(opts *globalOptions) *cobra.Command {
	var (
		from string
		to   string
		via  []string
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count walks from one vertex to another",
		Long: `Count directed walks from --from to --to.

With --via, only walks that visit every listed vertex in the given order are
counted. Unknown labels yield 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := opts.loadGraph(cmd, true)
			if err != nil {
				return err
			}
			n, err := g.CountPathsWithWaypoints(from, to, via)
			if err != nil {
				return err
			}
			opts.logger(cmd).Debug("count finished", "from", from, "to", to, "via", via, "walks", n)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin vertex (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination vertex (required)")
	cmd.Flags().StringSliceVar(&via, "via", nil, "ordered waypoints, comma-separated")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
