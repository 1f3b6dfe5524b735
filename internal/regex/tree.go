package regex

import "fmt"

// BuildTree reduces a postfix sequence to a single expression tree. The
// first operand popped for a binary operator becomes its right child.
func BuildTree(postfix Tokens) (*Node, error) {
	var stack []*Node
	for _, t := range postfix {
		switch t.Kind {
		case Star:
			if len(stack) < 1 {
				return nil, &Error{Kind: ErrInsufficientOperands, Stage: StageTree, Symbol: t.Value, Pos: t.Pos, Detail: "needs 1, have 0"}
			}
			child := stack[len(stack)-1]
			stack[len(stack)-1] = &Node{Kind: NodeStar, Symbol: t.Value, Left: child}
		case Concat, Alt:
			if len(stack) < 2 {
				return nil, &Error{Kind: ErrInsufficientOperands, Stage: StageTree, Symbol: t.Value, Pos: t.Pos, Detail: fmt.Sprintf("needs 2, have %d", len(stack))}
			}
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			kind := NodeConcat
			if t.Kind == Alt {
				kind = NodeUnion
			}
			stack = append(stack[:len(stack)-2], &Node{Kind: kind, Symbol: t.Value, Left: left, Right: right})
		default:
			stack = append(stack, leafNode(t))
		}
	}
	if len(stack) != 1 {
		return nil, &Error{Kind: ErrMalformedExpression, Stage: StageTree, Pos: -1, Detail: fmt.Sprintf("%d nodes left on the stack", len(stack))}
	}
	return stack[0], nil
}
