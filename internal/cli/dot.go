package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

// dotOpts holds the dot command flags.
type dotOpts struct {
	table  tableFlags
	depth  int
	output string
	svg    bool
}

// dotCommand creates the dot command that draws the top of the pattern tree.
func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{}

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Draw the pattern tree as Graphviz DOT or SVG",
		Long: `Draw the first --depth levels of the pattern tree.

The full tree has hundreds of thousands of nodes, so the default depth is
small. Restricted grids (--points) are small enough to draw in full.`,
		Example: `  patternlock dot --depth 2 | dot -Tpng > tree.png
  patternlock dot --points 123 --depth 3 --svg -o tree.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd, &opts)
		},
	}

	opts.table.register(cmd)
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", defaultDotDepth, "levels to draw (1-9)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG with Graphviz instead of writing DOT")

	return cmd
}

func runDot(cmd *cobra.Command, opts *dotOpts) error {
	ctx := cmd.Context()
	if opts.depth < 1 || opts.depth > grid.NumPoints {
		return perrors.New(perrors.ErrCodeInvalidInput, "--depth %d outside 1..%d", opts.depth, grid.NumPoints)
	}

	tree, err := buildTree(ctx, &opts.table)
	if err != nil {
		return err
	}

	var data []byte
	if opts.svg {
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		data, err = pattern.RenderSVG(ctx, tree, opts.depth)
		if err != nil {
			spinner.StopWithError("SVG rendering failed")
			return perrors.Wrap(perrors.ErrCodeInternal, err, "render SVG")
		}
		spinner.StopWithSuccess(fmt.Sprintf("Rendered SVG (%d bytes)", len(data)))
	} else {
		data = []byte(pattern.ToDOT(tree, opts.depth))
	}

	if opts.output == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return perrors.Wrap(perrors.ErrCodeSinkWrite, err, "write output")
		}
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return perrors.Wrap(perrors.ErrCodeSinkWrite, err, "write %s", opts.output)
	}
	printFile(opts.output)
	return nil
}
