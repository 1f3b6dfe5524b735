package regex

import "strings"

type NodeKind int

const (
	NodeLiteral NodeKind = iota // operand symbol
	NodeEmpty                   // ε
	NodeConcat                  // .
	NodeUnion                   // |
	NodeStar                    // *
)

func (k NodeKind) String() string {
	switch k {
	case NodeLiteral:
		return "literal"
	case NodeEmpty:
		return "empty"
	case NodeConcat:
		return "concat"
	case NodeUnion:
		return "union"
	case NodeStar:
		return "star"
	default:
		return "unknown"
	}
}

// Node is one vertex of the expression tree. Star nodes keep their operand
// in Left; Concat and Union nodes always have both children.
type Node struct {
	Kind   NodeKind
	Symbol string
	Left   *Node
	Right  *Node
}

func leafNode(tok Token) *Node {
	if tok.Kind == Epsilon {
		return &Node{Kind: NodeEmpty, Symbol: tok.Value}
	}
	return &Node{Kind: NodeLiteral, Symbol: tok.Value}
}

func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Walk visits n and its descendants in pre-order, left subtree first.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.Walk(visit)
	n.Right.Walk(visit)
}

func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}

// Equal reports whether both trees have the same shape and labels.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Kind == other.Kind &&
		n.Symbol == other.Symbol &&
		n.Left.Equal(other.Left) &&
		n.Right.Equal(other.Right)
}

// String renders the tree as a fully parenthesized infix expression.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeStar:
		b.WriteByte('(')
		n.Left.write(b)
		b.WriteString(")*")
	case NodeConcat, NodeUnion:
		b.WriteByte('(')
		n.Left.write(b)
		b.WriteString(n.Symbol)
		n.Right.write(b)
		b.WriteByte(')')
	default:
		b.WriteString(n.Symbol)
	}
}
