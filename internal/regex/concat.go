package regex

// InsertConcatenation makes implicit concatenation explicit. A Concat token
// goes between t1 and t2 unless t1 opens a group or is "|", t2 closes a
// group, is "|" or a postfix operator, or either one is ε.
//
// A multi-character Literal run counts as one operand when deciding
// adjacency with its neighbours; its characters are then emitted as
// single-symbol operands joined by Concat, which is the form the later
// stages read.
func InsertConcatenation(toks Tokens) Tokens {
	out := make(Tokens, 0, 2*len(toks))
	for i, t := range toks {
		if i > 0 && impliesConcat(toks[i-1], t) {
			out = append(out, punct(Concat, t.Pos))
		}
		if t.Kind == Literal {
			out = append(out, splitLiteral(t)...)
			continue
		}
		out = append(out, t)
	}
	return out
}

func impliesConcat(t1, t2 Token) bool {
	if t1.Kind == LParen || t1.Kind == Alt {
		return false
	}
	if t2.Kind == RParen || t2.Kind == Alt || t2.isPostfixOp() {
		return false
	}
	return t1.Kind != Epsilon && t2.Kind != Epsilon
}

func splitLiteral(t Token) Tokens {
	var out Tokens
	offset := 0
	for _, r := range t.Value {
		if offset > 0 {
			out = append(out, punct(Concat, t.Pos+offset))
		}
		out = append(out, Token{Kind: Literal, Value: string(r), Pos: t.Pos + offset})
		offset += len(string(r))
	}
	return out
}
