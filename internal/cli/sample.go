package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternlock/pkg/pattern"
)

// sampleOpts holds the sample command flags.
type sampleOpts struct {
	table   tableFlags
	length  int
	count   int
	seed    uint64
	uniform bool
}

// sampleCommand creates the sample command for drawing random patterns.
func (c *CLI) sampleCommand() *cobra.Command {
	opts := sampleOpts{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random patterns of a fixed length",
		Long: `Draw random patterns of exactly --length dots.

By default each pattern is a random walk that picks uniformly among the legal
next dots, which favours patterns through dots with few continuations. Pass
--uniform to make every pattern of the length equally likely. A fixed --seed
reproduces the same patterns.`,
		Example: `  patternlock sample --length 6 --count 5
  patternlock sample --uniform --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Sample
			flags := cmd.Flags()
			if !flags.Changed("length") {
				opts.length = cfg.Length
			}
			if !flags.Changed("count") {
				opts.count = cfg.Count
			}
			if !flags.Changed("seed") {
				opts.seed = cfg.Seed
			}
			if !flags.Changed("uniform") {
				opts.uniform = cfg.Uniform
			}
			return c.runSample(cmd, &opts)
		},
	}

	opts.table.register(cmd)
	cmd.Flags().IntVarP(&opts.length, "length", "l", pattern.MinSampleLength, "pattern length (4-9)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", pattern.DefaultSampleCount, "number of patterns")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().BoolVar(&opts.uniform, "uniform", false, "sample uniformly over all patterns of the length")

	return cmd
}

func (c *CLI) runSample(cmd *cobra.Command, opts *sampleOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	tree, err := buildTree(ctx, &opts.table)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	strategy := pattern.Walk
	if opts.uniform {
		strategy = pattern.Weighted
	}
	logger.Debug("sampling", "length", opts.length, "count", opts.count, "seed", seed, "strategy", strategy)

	paths, err := pattern.SampleContext(ctx, tree, opts.length, opts.count, pattern.NewRand(seed), strategy)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
	return nil
}
