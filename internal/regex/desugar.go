package regex

import "unicode/utf8"

// Desugar rewrites the convenience operators in terms of concatenation,
// alternation and closure:
//
//	G+  ->  G.G*
//	G?  ->  (G|ε)
//
// G is the operand right before the operator: a single operand symbol, or
// the whole parenthesized group ending there. The result holds no Plus or
// Quest tokens.
func Desugar(infix Tokens) (Tokens, error) {
	out := make(Tokens, 0, len(infix))
	for _, t := range infix {
		switch t.Kind {
		case Escape:
			if utf8.RuneCountInString(t.Value) < 2 {
				return nil, newError(StageDesugar, ErrIncompleteEscape, t.Value, t.Pos)
			}
			out = append(out, t)
		case Plus:
			start, err := operandStart(out, t)
			if err != nil {
				return nil, err
			}
			operand := append(Tokens(nil), out[start:]...)
			out = append(out, punct(Concat, t.Pos))
			out = append(out, operand...)
			out = append(out, punct(Star, t.Pos))
		case Quest:
			start, err := operandStart(out, t)
			if err != nil {
				return nil, err
			}
			operand := append(Tokens(nil), out[start:]...)
			out = append(out[:start], punct(LParen, t.Pos))
			out = append(out, operand...)
			out = append(out, punct(Alt, t.Pos), punct(Epsilon, t.Pos), punct(RParen, t.Pos))
		default:
			out = append(out, t)
		}
	}
	return out, nil
}

// operandStart returns the index in out where the operand of op begins.
// For a trailing ")" it walks back with a depth counter that goes up on ")"
// and down on "(", stopping when it reaches zero.
func operandStart(out Tokens, op Token) (int, error) {
	if len(out) == 0 {
		return 0, &Error{Kind: ErrMalformedOperand, Stage: StageDesugar, Symbol: op.Value, Pos: op.Pos, Detail: "nothing precedes it"}
	}
	last := len(out) - 1
	if out[last].isOperand() {
		return last, nil
	}
	if out[last].Kind != RParen {
		return 0, &Error{Kind: ErrMalformedOperand, Stage: StageDesugar, Symbol: op.Value, Pos: op.Pos, Detail: "preceded by " + out[last].Value}
	}

	depth := 0
	for j := last; j >= 0; j-- {
		switch out[j].Kind {
		case RParen:
			depth++
		case LParen:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, &Error{Kind: ErrMalformedOperand, Stage: StageDesugar, Symbol: op.Value, Pos: op.Pos, Detail: "unmatched )"}
}
