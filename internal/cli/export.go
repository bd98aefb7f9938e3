package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

// exportOpts holds the export command flags.
type exportOpts struct {
	table  tableFlags
	output string
	banner string
	min    int
	max    int
}

// exportCommand creates the export command that writes every pattern as text.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every pattern, one per line",
		Long: `Write every legal pattern as a line of dot digits ("753" for 7→5→3).

Patterns that share a prefix are grouped: all one-move extensions of a
pattern are written before any longer extension. --min and --max limit the
lengths written; phone-valid patterns are --min 4.`,
		Example: `  patternlock export -o patterns.txt --min 4
  patternlock export --points 123 --banner "# guess"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Export
			if !cmd.Flags().Changed("banner") {
				opts.banner = cfg.Banner
			}
			if !cmd.Flags().Changed("min") {
				opts.min = cfg.MinLength
			}
			if !cmd.Flags().Changed("max") {
				opts.max = cfg.MaxLength
			}
			return c.runExport(cmd, &opts)
		},
	}

	opts.table.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.banner, "banner", "", "line written before the patterns")
	cmd.Flags().IntVar(&opts.min, "min", 0, "shortest pattern length to write")
	cmd.Flags().IntVar(&opts.max, "max", 0, "longest pattern length to write")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, opts *exportOpts) error {
	ctx := cmd.Context()
	if opts.min < 0 || opts.max < 0 {
		return perrors.New(perrors.ErrCodeInvalidLength, "--min and --max must not be negative")
	}

	tree, err := buildTree(ctx, &opts.table)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	var f *os.File
	if opts.output != "" {
		f, err = os.Create(opts.output)
		if err != nil {
			return perrors.Wrap(perrors.ErrCodeSinkWrite, err, "create %s", opts.output)
		}
		defer f.Close()
		w = f
	}

	prog := newProgress(loggerFromContext(ctx))
	n, err := exportTo(cmd, w, tree, opts)
	if err != nil {
		return err
	}
	if f != nil {
		if err := f.Close(); err != nil {
			return perrors.Wrap(perrors.ErrCodeSinkWrite, err, "close %s", opts.output)
		}
	}
	prog.done(fmt.Sprintf("Exported %d patterns", n))
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// exportTo writes the optional banner line followed by the patterns.
func exportTo(cmd *cobra.Command, w io.Writer, tree *pattern.Tree, opts *exportOpts) (int, error) {
	if opts.banner != "" {
		if _, err := fmt.Fprintln(w, opts.banner); err != nil {
			return 0, perrors.Wrap(perrors.ErrCodeSinkWrite, err, "write banner")
		}
	}
	return pattern.ExportContext(cmd.Context(), tree, w, pattern.ExportOptions{
		MinLength: opts.min,
		MaxLength: opts.max,
	})
}
