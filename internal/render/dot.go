// Package render draws expression trees as Graphviz graphs.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"regextree/internal/regex"
)

// WriteDOT prints a Graphviz digraph for the tree rooted at root. Nodes are
// numbered n0, n1, ... in pre-order; each parent emits its left edge before
// descending into the left subtree, then the right edge.
func WriteDOT(w io.Writer, root *regex.Node) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "digraph G {")
	fmt.Fprintln(&buf, "    node [shape=circle];")
	if root != nil {
		next := 0
		writeNode(&buf, root, &next)
	}
	fmt.Fprintln(&buf, "}")

	_, err := w.Write(buf.Bytes())
	return err
}

func writeNode(buf *bytes.Buffer, n *regex.Node, next *int) {
	id := *next
	*next++
	fmt.Fprintf(buf, "    n%d [label=%s];\n", id, strconv.Quote(n.Symbol))
	for _, child := range []*regex.Node{n.Left, n.Right} {
		if child == nil {
			continue
		}
		fmt.Fprintf(buf, "    n%d -> n%d;\n", id, *next)
		writeNode(buf, child, next)
	}
}
