package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternlock/pkg/pattern"
)

// countCommand creates the count command for per-length pattern counts.
func (c *CLI) countCommand() *cobra.Command {
	var tf tableFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count patterns by length",
		Long: `Count the legal patterns of each length.

Without flags the full 3×3 grid is used. --points and --forbid restrict the
grid the same way the guess command does.`,
		Example: `  patternlock count
  patternlock count --points 12345 --forbid 1-5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			tree, err := buildTree(ctx, &tf)
			if err != nil {
				return err
			}
			counts := pattern.CountContext(ctx, tree)
			fmt.Fprintln(cmd.OutOrStdout(), renderCounts(counts))
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}
