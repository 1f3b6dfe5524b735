package regex

import (
	"errors"
	"strings"
	"testing"
)

// ------------------------------------------------------------------- helpers

func infixOf(t *testing.T, pattern string) Tokens {
	t.Helper()
	expanded, err := ExpandClasses(pattern)
	if err != nil {
		t.Fatalf("ExpandClasses(%q): %v", pattern, err)
	}
	toks, err := Tokenize(expanded)
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", expanded, err)
	}
	return InsertConcatenation(toks)
}

func desugared(t *testing.T, pattern string) Tokens {
	t.Helper()
	out, err := Desugar(infixOf(t, pattern))
	if err != nil {
		t.Fatalf("Desugar(%q): %v", pattern, err)
	}
	return out
}

func parse(t *testing.T, pattern string) *Result {
	t.Helper()
	res, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return res
}

func leaf(s string) *Node {
	if s == epsilon {
		return &Node{Kind: NodeEmpty, Symbol: s}
	}
	return &Node{Kind: NodeLiteral, Symbol: s}
}

func concat(l, r *Node) *Node { return &Node{Kind: NodeConcat, Symbol: ".", Left: l, Right: r} }
func union(l, r *Node) *Node  { return &Node{Kind: NodeUnion, Symbol: "|", Left: l, Right: r} }
func star(n *Node) *Node      { return &Node{Kind: NodeStar, Symbol: "*", Left: n} }

func postfixTokens(values ...string) Tokens {
	toks := make(Tokens, len(values))
	for i, v := range values {
		kind := Literal
		switch v {
		case "*":
			kind = Star
		case ".":
			kind = Concat
		case "|":
			kind = Alt
		}
		toks[i] = Token{Kind: kind, Value: v, Pos: -1}
	}
	return toks
}

// ------------------------------------------------------------------- concatenation

func TestInsertConcatenation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "a"},
		{"ab", "a.b"},
		{"abc", "a.b.c"},
		{"a b", "a.b"},
		{"a|b", "a|b"},
		{"a*b", "a*.b"},
		{"(a)(b)", "(a).(b)"},
		{"a(b|c)*d", "a.(b|c)*.d"},
		{"a+b?", "a+.b?"},
		{`a\*`, `a.\*`},
		{"aε", "aε"},
		{"(a|ε)b", "(a|ε).b"},
		{"[ab]c", "(a|b).c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := infixOf(t, tt.input).String(); got != tt.want {
				t.Errorf("InsertConcatenation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ------------------------------------------------------------------- desugaring

func TestDesugar(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a+", "a.a*"},
		{"ab+", "a.b.b*"},
		{"(ab)+", "(a.b).(a.b)*"},
		{"((a)b)+", "((a).b).((a).b)*"},
		{"a?", "(a|ε)"},
		{"ba?", "b.(a|ε)"},
		{"(a|b)?", "((a|b)|ε)"},
		{"a?+", "(a|ε).(a|ε)*"},
		{"a+b", "a.a*.b"},
		{`\++`, `\+.\+*`},
		{"a*b", "a*.b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := desugared(t, tt.input)
			if got.String() != tt.want {
				t.Errorf("Desugar(%q) = %q, want %q", tt.input, got.String(), tt.want)
			}
			if got.contains(Plus, Quest) {
				t.Errorf("Desugar(%q) left + or ? in %q", tt.input, got.String())
			}
		})
	}
}

func TestDesugarMalformedOperand(t *testing.T) {
	for _, input := range []string{"+a", "(+)", "a|?", "a*+", "?"} {
		t.Run(input, func(t *testing.T) {
			_, err := Desugar(infixOf(t, input))
			if !errors.Is(err, ErrMalformedOperand) {
				t.Fatalf("Desugar(%q) error = %v, want %v", input, err, ErrMalformedOperand)
			}
		})
	}

	t.Run("unmatched paren", func(t *testing.T) {
		toks := Tokens{punct(RParen, 0), punct(Plus, 1)}
		if _, err := Desugar(toks); !errors.Is(err, ErrMalformedOperand) {
			t.Fatalf("error = %v, want %v", err, ErrMalformedOperand)
		}
	})
}

func TestDesugarIncompleteEscape(t *testing.T) {
	toks := Tokens{{Kind: Escape, Value: `\`, Pos: 0}}
	if _, err := Desugar(toks); !errors.Is(err, ErrIncompleteEscape) {
		t.Fatalf("error = %v, want %v", err, ErrIncompleteEscape)
	}
}

// ------------------------------------------------------------------- postfix

func TestToPostfix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ab", "a b ."},
		{"a|b", "a b |"},
		{"a*", "a *"},
		{"a+", "a a * ."},
		{"[ab]", "a b |"},
		{"a|bc*", "a b c * . |"},
		{"ab|c", "a b . c |"},
		{"a|b|c", "a b | c |"},
		{"abc", "a b . c ."},
		{"(a|b)*c", "a b | * c ."},
		{"a**", "a * *"},
		{"a?", "a ε |"},
		{"x@{1}", "x @ . { . 1 . } ."},
		{`a\|`, `a \| .`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToPostfix(desugared(t, tt.input))
			if err != nil {
				t.Fatalf("ToPostfix(%q) error: %v", tt.input, err)
			}
			if got.Join(" ") != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.input, got.Join(" "), tt.want)
			}
		})
	}
}

func TestToPostfixErrors(t *testing.T) {
	tests := []struct {
		input  string
		want   error
		symbol string
	}{
		{"(a", ErrUnbalancedParens, "("},
		{"a)", ErrUnbalancedParens, ")"},
		{"((a)", ErrUnbalancedParens, "("},
		{"a-b", ErrUnrecognizedChar, "-"},
		{"a#", ErrUnrecognizedChar, "#"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ToPostfix(desugared(t, tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ToPostfix(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			var perr *Error
			if !errors.As(err, &perr) || perr.Symbol != tt.symbol {
				t.Errorf("ToPostfix(%q) symbol = %+v, want %q", tt.input, perr, tt.symbol)
			}
		})
	}
}

func TestToPostfixRejectsSugar(t *testing.T) {
	_, err := ToPostfix(infixOf(t, "a+"))
	if !errors.Is(err, ErrUnrecognizedChar) {
		t.Fatalf("error = %v, want %v", err, ErrUnrecognizedChar)
	}
	if !strings.Contains(err.Error(), `"+"`) {
		t.Errorf("error %q does not name the character", err)
	}
}

// ------------------------------------------------------------------- tree

func TestBuildTreeErrors(t *testing.T) {
	tests := []struct {
		name    string
		postfix Tokens
		want    error
	}{
		{"star on empty stack", postfixTokens("*"), ErrInsufficientOperands},
		{"concat with one operand", postfixTokens("a", "."), ErrInsufficientOperands},
		{"union with no operands", postfixTokens("|"), ErrInsufficientOperands},
		{"two roots", postfixTokens("a", "b"), ErrMalformedExpression},
		{"empty", postfixTokens(), ErrMalformedExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := BuildTree(tt.postfix)
			if !errors.Is(err, tt.want) {
				t.Fatalf("BuildTree error = %v, want %v", err, tt.want)
			}
			if root != nil {
				t.Errorf("BuildTree returned a tree alongside an error")
			}
		})
	}
}

func TestBuildTreeChildOrder(t *testing.T) {
	root, err := BuildTree(postfixTokens("a", "b", "c", "|", "."))
	if err != nil {
		t.Fatalf("BuildTree error: %v", err)
	}
	want := concat(leaf("a"), union(leaf("b"), leaf("c")))
	if !root.Equal(want) {
		t.Fatalf("tree = %s, want %s", root, want)
	}
}

// ------------------------------------------------------------------- pipeline

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		input   string
		infix   string
		postfix string
		tree    *Node
	}{
		{"ab", "a.b", "a b .", concat(leaf("a"), leaf("b"))},
		{"a|b", "a|b", "a b |", union(leaf("a"), leaf("b"))},
		{"a*", "a*", "a *", star(leaf("a"))},
		{"a+", "a.a*", "a a * .", concat(leaf("a"), star(leaf("a")))},
		{"[ab]", "(a|b)", "a b |", union(leaf("a"), leaf("b"))},
		{"a?", "(a|ε)", "a ε |", union(leaf("a"), leaf("ε"))},
		{"a(b|c)*", "a.(b|c)*", "a b c | * .", concat(leaf("a"), star(union(leaf("b"), leaf("c"))))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := parse(t, tt.input)
			if got := res.Desugared.String(); got != tt.infix {
				t.Errorf("desugared = %q, want %q", got, tt.infix)
			}
			if got := res.Postfix.Join(" "); got != tt.postfix {
				t.Errorf("postfix = %q, want %q", got, tt.postfix)
			}
			if !res.Root.Equal(tt.tree) {
				t.Errorf("tree = %s, want %s", res.Root, tt.tree)
			}
		})
	}
}

func TestParseUnbalanced(t *testing.T) {
	res, err := Parse("(a")
	if !errors.Is(err, ErrUnbalancedParens) {
		t.Fatalf("error = %v, want %v", err, ErrUnbalancedParens)
	}
	if res != nil {
		t.Fatalf("got a result for an unbalanced pattern")
	}
	if !strings.Contains(err.Error(), "unbalanced parentheses") {
		t.Errorf("error %q lacks a description", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
		stage Stage
	}{
		{"[]", ErrUnclosedClass, StageClasses},
		{"a[bc", ErrUnclosedClass, StageClasses},
		{`a\`, ErrIncompleteEscape, StageClasses},
		{"+", ErrMalformedOperand, StageDesugar},
		{"a&b", ErrUnrecognizedChar, StagePostfix},
		{"a)", ErrUnbalancedParens, StagePostfix},
		{"a|", ErrInsufficientOperands, StageTree},
		{"aε", ErrMalformedExpression, StageTree},
		{"", ErrMalformedExpression, StageTree},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Stage != tt.stage {
				t.Errorf("stage = %v, want %v", perr.Stage, tt.stage)
			}
		})
	}
}

func TestParseWildcardIsOperand(t *testing.T) {
	res := parse(t, "a.b")
	want := concat(concat(leaf("a"), leaf(".")), leaf("b"))
	if !res.Root.Equal(want) {
		t.Fatalf("tree = %s, want %s", res.Root, want)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for _, pattern := range []string{"a(b|c)*d", "[xyz]+q?", `(\(|\))*e`, "((a|b)c)+"} {
		first := parse(t, pattern)
		second := parse(t, pattern)
		if !first.Root.Equal(second.Root) {
			t.Errorf("Parse(%q) not deterministic: %s vs %s", pattern, first.Root, second.Root)
		}
		if first.Postfix.Join(" ") != second.Postfix.Join(" ") {
			t.Errorf("Parse(%q) postfix differs between runs", pattern)
		}
	}
}

func TestTreeShape(t *testing.T) {
	for _, pattern := range []string{"a", "ab*c", "(a|b)+", "[abc]?d", "x(y(z)*)+"} {
		res := parse(t, pattern)
		res.Root.Walk(func(n *Node) {
			switch n.Kind {
			case NodeLiteral, NodeEmpty:
				if !n.IsLeaf() {
					t.Errorf("%q: leaf %q has children", pattern, n.Symbol)
				}
			case NodeStar:
				if n.Left == nil || n.Right != nil {
					t.Errorf("%q: star node must own exactly a left child", pattern)
				}
			case NodeConcat, NodeUnion:
				if n.Left == nil || n.Right == nil {
					t.Errorf("%q: %s node must own two children", pattern, n.Kind)
				}
			}
		})
		if got, want := res.Root.Size(), len(res.Postfix); got != want {
			t.Errorf("%q: tree has %d nodes, postfix has %d tokens", pattern, got, want)
		}
	}
}

func TestNodeString(t *testing.T) {
	if got := parse(t, "a+").Root.String(); got != "(a.(a)*)" {
		t.Errorf("String() = %q", got)
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("a|b").Postfix.Join(" "); got != "a b |" {
		t.Errorf("postfix = %q", got)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnbalancedParens) {
			t.Errorf("recovered %v, want ErrUnbalancedParens", r)
		}
	}()
	MustParse("(a")
}
