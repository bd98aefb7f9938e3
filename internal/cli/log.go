// Package cli implements the patternlock command-line interface.
//
// This package provides commands for counting, exporting and sampling
// unlock patterns, for guess-mode queries over a subset of the dots, and for
// drawing the first levels of the pattern tree. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - count: Patterns per length for the full or a restricted grid
//   - export: Write every pattern as one decimal line
//   - sample: Draw random patterns of a given length
//   - guess: Count (and list) patterns using only some dots
//   - check: Validate a single pattern
//   - choices: Ways to pick k of the nine dots
//   - dot: Graphviz rendering of the top of the tree
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The core
// packages report builds, exports and samples through observability hooks,
// which [RegisterHooks] forwards to the CLI logger.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/patternlock/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Exported 389112 patterns (412ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards core events to a logger at debug level. Failures are
// left to the command that triggered them.
type logHooks struct {
	logger *log.Logger
}

// RegisterHooks routes the tree and output hooks to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetTreeHooks(h)
	observability.SetOutputHooks(h)
}

func (h *logHooks) OnBuildStart(_ context.Context, kind string) {
	h.logger.Debug("building pattern tree", "table", kind)
}

func (h *logHooks) OnBuildComplete(_ context.Context, kind string, nodes int, d time.Duration) {
	h.logger.Debug("pattern tree built", "table", kind, "patterns", nodes, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnCountComplete(_ context.Context, total int, d time.Duration) {
	h.logger.Debug("patterns counted", "total", total, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnExportComplete(_ context.Context, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "records", records, "error", err)
		return
	}
	h.logger.Debug("export finished", "records", records, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnSampleComplete(_ context.Context, length, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("sampling failed", "length", length, "error", err)
		return
	}
	h.logger.Debug("patterns sampled", "length", length, "count", count, "took", d.Round(time.Microsecond))
}
