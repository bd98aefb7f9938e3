package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternlock/pkg/combin"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

// choicesCommand prints how many dot selections and orderings exist for each
// phone-valid length, ignoring the blocking rule. Comparing the ordered
// column with count shows how much the rule prunes.
func (c *CLI) choicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "choices",
		Short: "Show ways to pick and order k of the nine dots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render("Dot choices on a 3×3 grid"))
			for k := pattern.MinSampleLength; k <= pattern.MaxSampleLength; k++ {
				sets := combin.Choose(grid.NumPoints, k)
				ordered := combin.Arrangements(grid.NumPoints, k)
				printKeyValue(w, fmt.Sprintf("%d dots", k),
					StyleNumber.Render(strconv.Itoa(sets))+StyleDim.Render(" sets · ")+
						StyleNumber.Render(strconv.Itoa(ordered))+StyleDim.Render(" orderings"))
			}
			return nil
		},
	}
}
