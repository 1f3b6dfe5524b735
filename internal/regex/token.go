package regex

import "strings"

type TokenKind int

const (
	Literal TokenKind = iota // run of ordinary characters
	Escape                   // \x
	Epsilon                  // ε
	LParen                   // (
	RParen                   // )
	Alt                      // |
	Star                     // *
	Plus                     // +
	Quest                    // ?
	Concat                   // explicit concatenation marker
)

const (
	epsilon    = "ε"
	concatMark = "."
)

var kindNames = map[TokenKind]string{
	Literal: "Literal",
	Escape:  "Escape",
	Epsilon: "Epsilon",
	LParen:  "LParen",
	RParen:  "RParen",
	Alt:     "Alt",
	Star:    "Star",
	Plus:    "Plus",
	Quest:   "Quest",
	Concat:  "Concat",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind  TokenKind
	Value string
	Pos   int // byte offset in the class-expanded pattern, -1 if synthesized
}

func (t Token) isOperand() bool {
	return t.Kind == Literal || t.Kind == Escape || t.Kind == Epsilon
}

func (t Token) isPostfixOp() bool {
	return t.Kind == Star || t.Kind == Plus || t.Kind == Quest
}

func punct(kind TokenKind, pos int) Token {
	switch kind {
	case LParen:
		return Token{Kind: kind, Value: "(", Pos: pos}
	case RParen:
		return Token{Kind: kind, Value: ")", Pos: pos}
	case Alt:
		return Token{Kind: kind, Value: "|", Pos: pos}
	case Star:
		return Token{Kind: kind, Value: "*", Pos: pos}
	case Plus:
		return Token{Kind: kind, Value: "+", Pos: pos}
	case Quest:
		return Token{Kind: kind, Value: "?", Pos: pos}
	case Epsilon:
		return Token{Kind: kind, Value: epsilon, Pos: pos}
	default:
		return Token{Kind: Concat, Value: concatMark, Pos: pos}
	}
}

type Tokens []Token

// String joins the token values with no separator, e.g. "a.b*".
func (ts Tokens) String() string { return ts.Join("") }

// Join joins the token values with sep; Join(" ") is the postfix display form.
func (ts Tokens) Join(sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Value
	}
	return strings.Join(parts, sep)
}

func (ts Tokens) contains(kinds ...TokenKind) bool {
	for _, t := range ts {
		for _, k := range kinds {
			if t.Kind == k {
				return true
			}
		}
	}
	return false
}
