package regex

// Result keeps every intermediate form of one parsed pattern.
type Result struct {
	Pattern   string
	Expanded  string // after class expansion
	Tokens    Tokens // tokenizer output
	Infix     Tokens // explicit concatenation
	Desugared Tokens // only . | * and ε left
	Postfix   Tokens
	Root      *Node
}

// Parse runs the full pipeline on one pattern. It keeps no state between
// calls and is safe for concurrent use.
func Parse(pattern string) (*Result, error) {
	res := &Result{Pattern: pattern}

	var err error
	if res.Expanded, err = ExpandClasses(pattern); err != nil {
		return nil, err
	}
	if res.Tokens, err = Tokenize(res.Expanded); err != nil {
		return nil, err
	}
	res.Infix = InsertConcatenation(res.Tokens)
	if res.Desugared, err = Desugar(res.Infix); err != nil {
		return nil, err
	}
	if res.Postfix, err = ToPostfix(res.Desugared); err != nil {
		return nil, err
	}
	if res.Root, err = BuildTree(res.Postfix); err != nil {
		return nil, err
	}
	return res, nil
}

func MustParse(pattern string) *Result {
	r, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return r
}
