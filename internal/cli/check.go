package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/patternlock/pkg/pattern"
)

// checkCommand creates the check command that validates one pattern.
func (c *CLI) checkCommand() *cobra.Command {
	var tf tableFlags

	cmd := &cobra.Command{
		Use:   "check PATTERN",
		Short: "Check whether a pattern is legal",
		Long: `Check whether PATTERN is a legal sequence of moves.

PATTERN lists the dots in order, as digits with optional separators
("2583" or "2-5-8-3"). The first illegal move is reported.`,
		Example: `  patternlock check 2583
  patternlock check 13 --points 123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, _, err := tf.table()
			if err != nil {
				return err
			}
			p, err := pattern.ParsePath(args[0])
			if err != nil {
				return err
			}
			if err := pattern.Validate(t, p); err != nil {
				return err
			}

			printSuccess("%s is a legal pattern of %d dots", StyleValue.Render(p.String()), len(p))
			if len(p) < pattern.MinSampleLength {
				printWarning("phones require at least %d dots", pattern.MinSampleLength)
			}
			return nil
		},
	}

	tf.register(cmd)
	return cmd
}
