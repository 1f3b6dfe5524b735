package regex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var precedence = map[TokenKind]int{
	Star:   3,
	Concat: 2,
	Alt:    1,
}

type operatorStack struct {
	ops []Token
}

func (s *operatorStack) push(t Token) {
	s.ops = append(s.ops, t)
}

func (s *operatorStack) pop() Token {
	t := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]
	return t
}

func (s *operatorStack) top() (Token, bool) {
	if !s.hasElements() {
		return Token{}, false
	}
	return s.ops[len(s.ops)-1], true
}

func (s *operatorStack) hasElements() bool {
	return len(s.ops) > 0
}

// ToPostfix converts a desugared infix sequence to postfix order with the
// shunting-yard algorithm. All operators are left-associative: a stacked
// operator is emitted before an incoming one of equal or lower precedence.
func ToPostfix(infix Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(infix))
	stack := operatorStack{}

	for _, t := range infix {
		switch t.Kind {
		case Literal:
			if strings.TrimSpace(t.Value) == "" {
				continue
			}
			if !isOperandSymbol(t.Value) {
				return nil, newError(StagePostfix, ErrUnrecognizedChar, t.Value, t.Pos)
			}
			out = append(out, t)
		case Escape:
			if utf8.RuneCountInString(t.Value) < 2 {
				return nil, newError(StagePostfix, ErrIncompleteEscape, t.Value, t.Pos)
			}
			out = append(out, t)
		case Epsilon:
			out = append(out, t)
		case LParen:
			stack.push(t)
		case RParen:
			for {
				top, ok := stack.top()
				if !ok {
					return nil, &Error{Kind: ErrUnbalancedParens, Stage: StagePostfix, Symbol: t.Value, Pos: t.Pos, Detail: "missing ("}
				}
				stack.pop()
				if top.Kind == LParen {
					break
				}
				out = append(out, top)
			}
		case Star, Concat, Alt:
			prec := precedence[t.Kind]
			for {
				top, ok := stack.top()
				if !ok {
					break
				}
				if stacked, isOp := precedence[top.Kind]; !isOp || stacked < prec {
					break
				}
				out = append(out, stack.pop())
			}
			stack.push(t)
		default:
			return nil, newError(StagePostfix, ErrUnrecognizedChar, t.Value, t.Pos)
		}
	}

	for stack.hasElements() {
		top := stack.pop()
		if top.Kind == LParen || top.Kind == RParen {
			return nil, &Error{Kind: ErrUnbalancedParens, Stage: StagePostfix, Symbol: top.Value, Pos: top.Pos, Detail: "missing )"}
		}
		out = append(out, top)
	}
	return out, nil
}

// isOperandSymbol accepts a single letter or digit, ε, @, a wildcard ".",
// "{" or "}".
func isOperandSymbol(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}
	if unicode.IsLetter(r) || unicode.IsNumber(r) {
		return true
	}
	switch s {
	case epsilon, "@", ".", "{", "}":
		return true
	}
	return false
}
