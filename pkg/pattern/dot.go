package pattern

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the tree down to maxDepth
// levels (maxDepth <= 0 draws the whole tree).
//
// The root is drawn as "start"; every other node is labeled with its dot.
// The canonical tree has hundreds of thousands of nodes, so callers should
// limit the depth or use a restricted table.
func ToDOT(tree *Tree, maxDepth int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Patterns {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white, shape=circle];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n\n")
	buf.WriteString("  n0 [label=\"start\", shape=box, style=\"filled,rounded\"];\n")

	writeDOTNode(&buf, tree.Root, 0, 1, maxDepth)

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTNode writes the children of n (whose DOT id is id) and returns the
// next free id.
func writeDOTNode(buf *bytes.Buffer, n *Node, id, depth, maxDepth int) int {
	next := id + 1
	if maxDepth > 0 && depth > maxDepth {
		return next
	}
	for _, c := range n.Children {
		childID := next
		fmt.Fprintf(buf, "  n%d [label=\"%d\"];\n", childID, c.Point)
		fmt.Fprintf(buf, "  n%d -> n%d;\n", id, childID)
		next = writeDOTNode(buf, c, childID, depth+1, maxDepth)
	}
	return next
}

// RenderSVG renders the tree down to maxDepth levels as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it. Errors are returned if Graphviz cannot initialize, the DOT is
// malformed, or rendering fails.
func RenderSVG(ctx context.Context, tree *Tree, maxDepth int) ([]byte, error) {
	dot := ToDOT(tree, maxDepth)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
