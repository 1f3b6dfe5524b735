package regex

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var classLexer = mustClassLexer()

// Longest match wins; on equal length the rule added first wins, so the
// bare "[" and "\" rules only fire when nothing longer matches.
func mustClassLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`\[[^\]]*\]`), expandClass)
	l.Add([]byte(`\[`), unclosedClass)
	l.Add([]byte(`\\.`), copyBytes)
	l.Add([]byte(`\\`), danglingEscape)
	l.Add([]byte(`.`), copyBytes)
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

// ExpandClasses rewrites every bracket class [c1c2...cn] into the
// alternation (c1|c2|...|cn). Escape pairs are copied through untouched and
// class contents are taken literally: no ranges, no negation, no escapes.
func ExpandClasses(pattern string) (string, error) {
	scanner, err := classLexer.Scanner([]byte(pattern))
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok && ui.StartTC < len(pattern) {
				return "", newError(StageClasses, ErrUnrecognizedChar, pattern[ui.StartTC:ui.StartTC+1], ui.StartTC)
			}
			return "", err
		}
		out.WriteString(tok.(string))
	}
	return out.String(), nil
}

func expandClass(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	members := []rune(string(m.Bytes[1 : len(m.Bytes)-1]))
	if len(members) == 0 {
		return nil, newError(StageClasses, ErrUnclosedClass, string(m.Bytes), m.TC)
	}
	parts := make([]string, len(members))
	for i, r := range members {
		parts[i] = string(r)
	}
	return "(" + strings.Join(parts, "|") + ")", nil
}

func unclosedClass(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, newError(StageClasses, ErrUnclosedClass, "[", m.TC)
}

func danglingEscape(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return nil, newError(StageClasses, ErrIncompleteEscape, `\`, m.TC)
}

func copyBytes(_ *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return string(m.Bytes), nil
}
