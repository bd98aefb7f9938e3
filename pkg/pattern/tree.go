package pattern

import (
	"context"
	"time"

	"github.com/matzehuels/patternlock/pkg/grid"
	"github.com/matzehuels/patternlock/pkg/observability"
)

// Node is one dot in the pattern tree. A node exclusively owns its children;
// there are no parent links.
type Node struct {
	Point    grid.Point
	Children []*Node

	// height is the length of the longest path below this node (0 for a leaf).
	height uint8
}

// Height returns the number of further dots the longest pattern through n
// can add after n.
func (n *Node) Height() int { return int(n.height) }

// Child returns the child for p, or nil if the move to p is not in the tree.
func (n *Node) Child(p grid.Point) *Node {
	for _, c := range n.Children {
		if c.Point == p {
			return c
		}
		if c.Point > p {
			break
		}
	}
	return nil
}

// Tree holds every legal pattern for a table as root-to-node routes. The
// root stands for [grid.Root] and is not part of any pattern.
//
// A Tree is immutable after Build returns and safe for concurrent readers.
type Tree struct {
	Root  *Node
	Table *grid.Table

	size int
}

// Size returns the number of patterns in the tree (non-root nodes).
func (t *Tree) Size() int { return t.size }

// Depth returns the length of the longest pattern in the tree.
func (t *Tree) Depth() int { return t.Root.Height() }

// Empty reports whether the tree contains no patterns.
func (t *Tree) Empty() bool { return len(t.Root.Children) == 0 }

// Contains reports whether p is a pattern in the tree.
func (t *Tree) Contains(p Path) bool {
	if len(p) == 0 {
		return false
	}
	n := t.Root
	for _, pt := range p {
		if n = n.Child(pt); n == nil {
			return false
		}
	}
	return true
}

// Walk calls fn for every pattern in depth-first order, parents before
// children and siblings in ascending order. The Path passed to fn is reused
// between calls; clone it to keep it. Walk stops early if fn returns false.
func (t *Tree) Walk(fn func(Path) bool) {
	branch := make(Path, 0, grid.NumPoints)
	walk(t.Root, branch, fn)
}

func walk(n *Node, branch Path, fn func(Path) bool) bool {
	for _, c := range n.Children {
		next := append(branch, c.Point)
		if !fn(next) || !walk(c, next, fn) {
			return false
		}
	}
	return true
}

// Build enumerates every legal pattern under t.
//
// The search starts at the root with no dots used. At each node every unused
// dot is tried in ascending order; the move is kept if the table's rule from
// the node's dot allows it given the dots used so far. Kept moves become
// children, and the search recurses into each before the dot is released
// again. Recursion ends once all nine dots are used.
//
// Build never fails: an unreachable table simply yields an empty tree.
func Build(t *grid.Table) *Tree {
	b := &builder{table: t}
	root := &Node{Point: grid.Root}
	b.grow(root)
	return &Tree{Root: root, Table: t, size: b.nodes}
}

// BuildContext is like Build but reports the build through the registered
// [observability.TreeHooks]. kind labels the table in those events.
func BuildContext(ctx context.Context, t *grid.Table, kind string) *Tree {
	hooks := observability.Tree()
	hooks.OnBuildStart(ctx, kind)
	start := time.Now()
	tree := Build(t)
	hooks.OnBuildComplete(ctx, kind, tree.Size(), time.Since(start))
	return tree
}

// builder carries the state of one Build call. used is the set of dots on
// the branch currently being extended.
type builder struct {
	table *grid.Table
	used  grid.Set
	nodes int
}

func (b *builder) grow(n *Node) {
	var moves [grid.NumPoints]grid.Point
	count := 0
	for p := grid.Point(1); p <= grid.NumPoints; p++ {
		if b.used.Has(p) || !b.table.Allows(n.Point, p, b.used) {
			continue
		}
		moves[count] = p
		count++
	}
	if count == 0 {
		return
	}

	n.Children = make([]*Node, count)
	for i, p := range moves[:count] {
		child := &Node{Point: p}
		b.used = b.used.Add(p)
		b.grow(child)
		b.used = b.used.Remove(p)

		n.Children[i] = child
		n.height = max(n.height, child.height+1)
	}
	b.nodes += count
}
