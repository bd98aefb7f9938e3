package pattern

import (
	"bufio"
	"context"
	"io"
	"time"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/observability"
)

// ExportOptions limits which patterns are written. Zero values mean no limit.
type ExportOptions struct {
	// MinLength skips patterns shorter than this many dots.
	MinLength int
	// MaxLength skips patterns longer than this many dots.
	MaxLength int
}

func (o ExportOptions) bounds() (lo, hi int) {
	lo, hi = 1, grid.NumPoints
	if o.MinLength > 0 {
		lo = o.MinLength
	}
	if o.MaxLength > 0 {
		hi = min(o.MaxLength, grid.NumPoints)
	}
	return lo, hi
}

// Export writes every pattern in tree to w, one newline-terminated decimal
// record per pattern ("753\n" for 7→5→3).
//
// For each node, the records of all its direct children are written before
// descending into any of them, so the moves available after a given prefix
// appear together. Write failures are returned as SINK_WRITE_FAILURE errors
// wrapping the writer's error and are not retried.
func Export(tree *Tree, w io.Writer) error {
	_, err := ExportFiltered(tree, w, ExportOptions{})
	return err
}

// ExportFiltered is like Export but writes only patterns whose length is
// within opts, and reports the number of records written.
func ExportFiltered(tree *Tree, w io.Writer, opts ExportOptions) (int, error) {
	lo, hi := opts.bounds()
	if lo > hi {
		return 0, perrors.New(perrors.ErrCodeInvalidLength, "export range %d..%d is empty", lo, hi)
	}

	e := &exporter{w: bufio.NewWriter(w), lo: lo, hi: hi}
	branch := make([]byte, 0, grid.NumPoints+1)
	if err := e.visit(tree.Root, branch); err != nil {
		return e.records, err
	}
	if err := e.w.Flush(); err != nil {
		return e.records, perrors.Wrap(perrors.ErrCodeSinkWrite, err, "flush export")
	}
	return e.records, nil
}

// ExportContext is like ExportFiltered but reports through the registered
// [observability.OutputHooks].
func ExportContext(ctx context.Context, tree *Tree, w io.Writer, opts ExportOptions) (int, error) {
	start := time.Now()
	n, err := ExportFiltered(tree, w, opts)
	observability.Output().OnExportComplete(ctx, n, time.Since(start), err)
	return n, err
}

type exporter struct {
	w       *bufio.Writer
	lo, hi  int
	records int
}

// visit writes the records for n's children, then descends into each. branch
// holds the digits of the route to n.
func (e *exporter) visit(n *Node, branch []byte) error {
	depth := len(branch) + 1
	if depth > e.hi {
		return nil
	}
	if depth >= e.lo {
		for _, c := range n.Children {
			rec := append(branch, '0'+byte(c.Point), '\n')
			if _, err := e.w.Write(rec); err != nil {
				return perrors.Wrap(perrors.ErrCodeSinkWrite, err, "write record %s", rec[:len(rec)-1])
			}
			e.records++
		}
	}
	for _, c := range n.Children {
		if err := e.visit(c, append(branch, '0'+byte(c.Point))); err != nil {
			return err
		}
	}
	return nil
}
