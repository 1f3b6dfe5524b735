package regex

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnclosedClass        = errors.New("unclosed or empty character class")
	ErrIncompleteEscape     = errors.New("incomplete escape sequence")
	ErrMalformedOperand     = errors.New("malformed operand before operator")
	ErrUnrecognizedChar     = errors.New("unrecognized character")
	ErrUnbalancedParens     = errors.New("unbalanced parentheses")
	ErrInsufficientOperands = errors.New("insufficient operands for operator")
	ErrMalformedExpression  = errors.New("malformed expression: multiple root candidates")
)

type Stage int

const (
	StageClasses Stage = iota
	StageTokenize
	StageConcat
	StageDesugar
	StagePostfix
	StageTree
)

func (s Stage) String() string {
	switch s {
	case StageClasses:
		return "class expansion"
	case StageTokenize:
		return "tokenize"
	case StageConcat:
		return "concatenation"
	case StageDesugar:
		return "desugar"
	case StagePostfix:
		return "postfix"
	case StageTree:
		return "tree"
	default:
		return "unknown stage"
	}
}

// Error describes a pipeline failure. Kind is one of the Err* sentinels so
// callers can match with errors.Is.
type Error struct {
	Kind   error
	Stage  Stage
	Symbol string
	Pos    int
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Stage, e.Kind)
	if e.Symbol != "" {
		fmt.Fprintf(&b, " %q", e.Symbol)
	}
	if e.Pos >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Pos)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(stage Stage, kind error, symbol string, pos int) *Error {
	return &Error{Kind: kind, Stage: stage, Symbol: symbol, Pos: pos}
}
