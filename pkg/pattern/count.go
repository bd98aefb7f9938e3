package pattern

import (
	"context"
	"time"

	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/observability"
)

// Counts holds the number of patterns of each length; index L-1 is the
// number of patterns with L dots.
type Counts [grid.NumPoints]int

// Total returns the number of patterns of any length.
func (c Counts) Total() int {
	return c.Range(1, grid.NumPoints)
}

// Range returns the number of patterns whose length lies in [lo, hi].
// Bounds are clamped to 1..9.
func (c Counts) Range(lo, hi int) int {
	lo, hi = max(lo, 1), min(hi, grid.NumPoints)
	sum := 0
	for l := lo; l <= hi; l++ {
		sum += c[l-1]
	}
	return sum
}

// Length returns the number of patterns with exactly l dots, or 0 when l is
// outside 1..9.
func (c Counts) Length(l int) int {
	if l < 1 || l > grid.NumPoints {
		return 0
	}
	return c[l-1]
}

// Count tabulates the patterns in tree by length. An empty tree yields all
// zeros.
func Count(tree *Tree) Counts {
	var c Counts
	CountInto(tree.Root, &c)
	return c
}

// CountContext is like Count but reports through the registered
// [observability.TreeHooks].
func CountContext(ctx context.Context, tree *Tree) Counts {
	start := time.Now()
	c := Count(tree)
	observability.Tree().OnCountComplete(ctx, c.Total(), time.Since(start))
	return c
}

// CountInto adds the patterns below root to counts in place, treating root
// as depth 0. Every node below root is visited exactly once.
func CountInto(root *Node, counts *Counts) {
	countLevel(root, counts, 0)
}

func countLevel(n *Node, counts *Counts, level int) {
	for _, c := range n.Children {
		counts[level]++
		countLevel(c, counts, level+1)
	}
}
