package pattern

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	perrors "github.com/matzehuels/patternlock/pkg/errors"
)

func TestExportOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(restricted(t, "1,2,3", ""), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	// Root's moves first, then each prefix's moves grouped before descending.
	want := strings.Join([]string{
		"1", "2", "3",
		"12", "123",
		"21", "23", "213", "231",
		"32", "321",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Export() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportMatchesCount(t *testing.T) {
	tree := canonical(t)

	var buf bytes.Buffer
	if err := Export(tree, &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var fromText Counts
	seen := make(map[string]bool, tree.Size())
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		rec := sc.Text()
		if seen[rec] {
			t.Fatalf("record %s exported twice", rec)
		}
		seen[rec] = true
		fromText[len(rec)-1]++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}

	if want := Count(tree); fromText != want {
		t.Errorf("counts from export = %v, Count() = %v", fromText, want)
	}
}

func TestExportFiltered(t *testing.T) {
	tree := canonical(t)

	tests := []struct {
		name string
		opts ExportOptions
		want int
	}{
		{"phone lengths", ExportOptions{MinLength: 4}, canonicalCounts.Range(4, 9)},
		{"only pairs", ExportOptions{MinLength: 2, MaxLength: 2}, 56},
		{"short only", ExportOptions{MaxLength: 3}, 9 + 56 + 320},
		{"max beyond grid", ExportOptions{MinLength: 9, MaxLength: 12}, 140704},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := ExportFiltered(tree, &buf, tt.opts)
			if err != nil {
				t.Fatalf("ExportFiltered() error: %v", err)
			}
			if n != tt.want {
				t.Errorf("records = %d, want %d", n, tt.want)
			}
			if lines := bytes.Count(buf.Bytes(), []byte("\n")); lines != tt.want {
				t.Errorf("lines = %d, want %d", lines, tt.want)
			}
		})
	}
}

func TestExportFilteredEmptyRange(t *testing.T) {
	_, err := ExportFiltered(canonical(t), io.Discard, ExportOptions{MinLength: 6, MaxLength: 5})
	if !perrors.Is(err, perrors.ErrCodeInvalidLength) {
		t.Errorf("error = %v, want %s", err, perrors.ErrCodeInvalidLength)
	}
}

func TestExportEmptyTree(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(restricted(t, "", ""), &buf); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty tree exported %q", buf.String())
	}
}

var errDiskFull = errors.New("disk full")

// limitWriter fails once more than n bytes have been written.
type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		written := w.n
		w.n = 0
		return written, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestExportSinkFailure(t *testing.T) {
	tests := []struct {
		name  string
		limit int
	}{
		// Fails while the buffer is being drained mid-export.
		{"during export", 10000},
		// Fails on the final flush of a small export.
		{"on flush", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := canonical(t)
			if tt.limit < 100 {
				tree = restricted(t, "1,2,3", "")
			}
			err := Export(tree, &limitWriter{n: tt.limit})
			if !perrors.Is(err, perrors.ErrCodeSinkWrite) {
				t.Fatalf("error = %v, want %s", err, perrors.ErrCodeSinkWrite)
			}
			if !errors.Is(err, errDiskFull) {
				t.Errorf("error %v should wrap the sink's error", err)
			}
		})
	}

	// The tree stays usable after a failed export.
	if got := Count(canonical(t)); got != canonicalCounts {
		t.Errorf("Count() after failed export = %v", got)
	}
}
