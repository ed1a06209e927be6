package mexe

// Expr    = Term AddTail
// AddTail = ('+' | '-') Term AddTail | ε
// Term    = Factor MulTail
// MulTail = ('*' | '/') Factor MulTail | ε
// Factor  = num | '(' Expr ')' | '-' num | '-' '(' Expr ')'

// folder combines the values of productions as the parser recognizes them.
// Folding into float64 evaluates during the parse; folding into *node builds a
// tree.
type folder[T any] interface {
	num(v float64) T
	neg(x T) T
	binary(op Operator, l, r T) T
}

// evaluator folds productions directly into their values.
type evaluator struct{}

func (evaluator) num(v float64) float64 {
	return v
}

func (evaluator) neg(x float64) float64 {
	return -x
}

func (evaluator) binary(op Operator, l, r float64) float64 {
	return op.apply(l, r)
}

// parser is an LL(1) recursive descent parser over a token slice. Each
// production returns its folded value along with the unconsumed tokens.
type parser[T any, F folder[T]] struct {
	f F
	// depth is the current parenthesis nesting depth.
	depth int
	// max is the maximum depth, or 0 for no limit.
	max int
}

// parseTokens parses a complete token sequence, which must end with exactly one
// TokenEOI.
func parseTokens[T any, F folder[T]](toks []Token, f F, p *parsectx) (T, error) {
	var zero T
	ps := parser[T, F]{f: f, max: p.maxDepth}
	v, rest, err := ps.expr(toks)
	if err != nil {
		return zero, err
	}
	tok, err := peek(rest)
	if err != nil {
		return zero, err
	}
	if tok.Kind != TokenEOI {
		// Finished parsing, but there is something left.
		return zero, unexpected(tok)
	}
	if len(rest) != 1 {
		return zero, ErrInternalParser
	}
	return v, nil
}

// peek returns the next token. Since every sequence ends with TokenEOI and no
// production consumes it, running out of tokens means the sequence was not
// produced by the tokenizer.
func peek(toks []Token) (Token, error) {
	if len(toks) == 0 {
		return Token{}, ErrInternalParser
	}
	return toks[0], nil
}

// expr parses Expr = Term AddTail.
func (p *parser[T, F]) expr(toks []Token) (T, []Token, error) {
	v, toks, err := p.term(toks)
	if err != nil {
		return v, nil, err
	}
	return p.addtail(v, toks)
}

// addtail parses AddTail, folding each term into the accumulated v from left
// to right.
func (p *parser[T, F]) addtail(v T, toks []Token) (T, []Token, error) {
	for {
		tok, err := peek(toks)
		if err != nil {
			return v, nil, err
		}
		if tok.Kind != TokenOp || tok.Op != Add && tok.Op != Sub {
			// ε
			return v, toks, nil
		}
		r, rest, err := p.term(toks[1:])
		if err != nil {
			return v, nil, err
		}
		v, toks = p.f.binary(tok.Op, v, r), rest
	}
}

// term parses Term = Factor MulTail.
func (p *parser[T, F]) term(toks []Token) (T, []Token, error) {
	v, toks, err := p.factor(toks)
	if err != nil {
		return v, nil, err
	}
	return p.multail(v, toks)
}

// multail parses MulTail, folding each factor into the accumulated v from
// left to right.
func (p *parser[T, F]) multail(v T, toks []Token) (T, []Token, error) {
	for {
		tok, err := peek(toks)
		if err != nil {
			return v, nil, err
		}
		if tok.Kind != TokenOp || tok.Op != Mul && tok.Op != Div {
			return v, toks, nil
		}
		r, rest, err := p.factor(toks[1:])
		if err != nil {
			return v, nil, err
		}
		v, toks = p.f.binary(tok.Op, v, r), rest
	}
}

// factor parses Factor. Unary minus is only recognized here, directly before
// a number or an open parenthesis.
func (p *parser[T, F]) factor(toks []Token) (T, []Token, error) {
	var zero T
	tok, err := peek(toks)
	if err != nil {
		return zero, nil, err
	}
	switch tok.Kind {
	case TokenNumber:
		return p.f.num(tok.Num), toks[1:], nil
	case TokenLeftParen:
		return p.group(tok, toks[1:])
	case TokenOp:
		if tok.Op != Sub {
			break
		}
		next, err := peek(toks[1:])
		if err != nil {
			return zero, nil, err
		}
		switch next.Kind {
		case TokenNumber:
			return p.f.neg(p.f.num(next.Num)), toks[2:], nil
		case TokenLeftParen:
			v, rest, err := p.group(next, toks[2:])
			if err != nil {
				return zero, nil, err
			}
			return p.f.neg(v), rest, nil
		}
		return zero, nil, unexpected(next)
	}
	return zero, nil, unexpected(tok)
}

// group parses the rest of '(' Expr ')' after the open parenthesis.
func (p *parser[T, F]) group(open Token, toks []Token) (T, []Token, error) {
	var zero T
	p.depth++
	if p.max > 0 && p.depth > p.max {
		return zero, nil, &DepthError{Index: open.Pos, Max: p.max}
	}
	v, toks, err := p.expr(toks)
	if err != nil {
		return zero, nil, err
	}
	p.depth--
	end, err := peek(toks)
	if err != nil {
		return zero, nil, err
	}
	if end.Kind != TokenRightParen {
		return zero, nil, unexpected(end)
	}
	return v, toks[1:], nil
}

// evalBinary evaluates a token sequence that must be exactly a number, an
// operator, a number, and the end marker.
func evalBinary(toks []Token) (float64, error) {
	if len(toks) != 4 || toks[3].Kind != TokenEOI {
		return 0, ErrInvalidBinaryExpression
	}
	lhs, op, rhs := toks[0], toks[1], toks[2]
	if lhs.Kind != TokenNumber || rhs.Kind != TokenNumber {
		return 0, ErrMissingOperand
	}
	if op.Kind != TokenOp {
		return 0, ErrMissingOperator
	}
	return op.Op.apply(lhs.Num, rhs.Num), nil
}
