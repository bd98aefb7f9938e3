package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patternlock/pkg/buildinfo"
	"github.com/matzehuels/patternlock/pkg/config"
	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/pattern"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "patternlock"

	// defaultDotDepth limits DOT output to the first moves; deeper trees
	// have hundreds of thousands of nodes.
	defaultDotDepth = 2
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Patternlock enumerates Android-style unlock patterns",
		Long: `Patternlock enumerates every legal connect-the-dots pattern on the 3×3
unlock grid, counts them by length, exports them as text, draws random
patterns and answers guess-mode queries over a subset of the dots.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/patternlock/config.toml)")

	// Register all subcommands
	root.AddCommand(c.countCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.guessCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.choicesCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the file named by --config, or the default location.
// An explicitly named file must exist.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			return nil
		}
		path = p
	} else if _, err := os.Stat(path); err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "config file %s", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "path", path)
	return nil
}

// =============================================================================
// Table Selection
// =============================================================================

// tableFlags are the --points/--forbid flags shared by the commands that
// can work on a restricted grid.
type tableFlags struct {
	points string
	forbid string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.points, "points", "", `restrict the grid to these dots (e.g. "1,2,3" or "123")`)
	cmd.Flags().StringVar(&f.forbid, "forbid", "", `forbid direct moves between dot pairs (e.g. "1-3,4-6")`)
}

// table returns the canonical table when neither flag is set, and the
// restricted table otherwise. A --forbid without --points applies to the
// full grid.
func (f *tableFlags) table() (*grid.Table, grid.Kind, error) {
	if f.points == "" && f.forbid == "" {
		return grid.Canonical(), grid.KindCanonical, nil
	}

	allowed := grid.Full
	if f.points != "" {
		s, err := grid.ParsePoints(f.points)
		if err != nil {
			return nil, grid.KindRestricted, err
		}
		allowed = s
	}
	edges, err := grid.ParseEdges(f.forbid)
	if err != nil {
		return nil, grid.KindRestricted, err
	}
	t, err := grid.Build(grid.KindRestricted, allowed, edges)
	return t, grid.KindRestricted, err
}

// =============================================================================
// Tree Building
// =============================================================================

// buildTree builds the pattern tree for f behind a spinner.
func buildTree(ctx context.Context, f *tableFlags) (*pattern.Tree, error) {
	t, kind, err := f.table()
	if err != nil {
		return nil, err
	}

	spinner := newSpinnerWithContext(ctx, "Enumerating patterns...")
	spinner.Start()
	tree := pattern.BuildContext(ctx, t, kind.String())
	spinner.Stop()

	if spinner.Cancelled() {
		return nil, ctx.Err()
	}
	return tree, nil
}
