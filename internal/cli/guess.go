package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

// guessOpts holds the guess command flags.
type guessOpts struct {
	table tableFlags
	list  bool
}

// guessCommand creates the guess command. It answers "which patterns are
// still possible" when only some dots are known to be used, for example
// from smudges on the screen, and optionally some moves are ruled out.
func (c *CLI) guessCommand() *cobra.Command {
	opts := guessOpts{}

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Count patterns that use only the given dots",
		Long: `Count the patterns that use only the dots in --points, leaving out
direct moves listed in --forbid. Dots outside the set are never visited, so
a move that would pass over one of them stays blocked.

With --list the phone-valid patterns (4 dots and up) are printed.`,
		Example: `  patternlock guess --points 1235789
  patternlock guess --points 123 --list
  patternlock guess --points 12356 --forbid 1-5,3-5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("points") {
				opts.table.points = c.Config.Guess.Points
			}
			if !cmd.Flags().Changed("forbid") {
				opts.table.forbid = c.Config.Guess.Forbid
			}
			if opts.table.points == "" {
				return perrors.New(perrors.ErrCodeInvalidPointSet, "--points is required (or set guess.points in the config file)")
			}
			return runGuess(cmd, &opts)
		},
	}

	opts.table.register(cmd)
	cmd.Flags().BoolVar(&opts.list, "list", false, "print every pattern of 4 or more dots")

	return cmd
}

func runGuess(cmd *cobra.Command, opts *guessOpts) error {
	ctx := cmd.Context()

	allowed, err := grid.ParsePoints(opts.table.points)
	if err != nil {
		return err
	}
	tree, err := buildTree(ctx, &opts.table)
	if err != nil {
		return err
	}

	if tree.Empty() {
		printWarning("no pattern uses only dots %s", allowed)
		return nil
	}

	w := cmd.OutOrStdout()
	if opts.list {
		n, err := pattern.ExportContext(ctx, tree, w, pattern.ExportOptions{MinLength: pattern.MinSampleLength})
		if err != nil {
			return err
		}
		printInfo("%d patterns of %d+ dots using %s", n, pattern.MinSampleLength, allowed)
		return nil
	}

	printInfo("dots %s", StyleValue.Render(allowed.String()))
	if opts.table.forbid != "" {
		printDetail("forbidden moves: %s", opts.table.forbid)
	}
	fmt.Fprintln(w, renderCounts(pattern.CountContext(ctx, tree)))
	return nil
}
