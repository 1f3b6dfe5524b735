package regex

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order at each position, so an escape pair is taken
// before its backslash could be read as anything else.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Escape", Pattern: `\\.`},
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "Punct", Pattern: `[()|*+?]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Literal", Pattern: `[^()|*+?\s\\ε]+`},
})

var symbols = patternLexer.Symbols()

var punctKinds = map[string]TokenKind{
	"(": LParen,
	")": RParen,
	"|": Alt,
	"*": Star,
	"+": Plus,
	"?": Quest,
}

// Tokenize splits a class-free pattern into tokens. Structural characters
// are single tokens, whitespace only separates, and every other run of
// characters becomes one Literal token.
func Tokenize(expr string) (Tokens, error) {
	lex, err := patternLexer.LexString("", expr)
	if err != nil {
		return nil, err
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		pos := -1
		var lerr *lexer.Error
		if errors.As(err, &lerr) {
			pos = lerr.Pos.Offset
		}
		return nil, newError(StageTokenize, ErrIncompleteEscape, `\`, pos)
	}

	toks := make(Tokens, 0, len(raw))
	for _, t := range raw {
		switch t.Type {
		case lexer.EOF, symbols["Whitespace"]:
			continue
		case symbols["Escape"]:
			toks = append(toks, Token{Kind: Escape, Value: t.Value, Pos: t.Pos.Offset})
		case symbols["Epsilon"]:
			toks = append(toks, punct(Epsilon, t.Pos.Offset))
		case symbols["Punct"]:
			toks = append(toks, punct(punctKinds[t.Value], t.Pos.Offset))
		default:
			toks = append(toks, Token{Kind: Literal, Value: t.Value, Pos: t.Pos.Offset})
		}
	}
	return toks, nil
}
