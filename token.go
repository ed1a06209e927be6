package mexe

import "strconv"

// Operator is a binary arithmetic operator. Its value is the ASCII symbol that
// denotes it.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// Symbol returns the single-character symbol of the operator.
func (op Operator) Symbol() byte {
	return byte(op)
}

func (op Operator) String() string {
	switch op {
	case Add, Sub, Mul, Div:
		return string(rune(op))
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// apply computes l op r with ordinary IEEE-754 semantics. Division by zero
// produces an infinity or NaN rather than an error.
func (op Operator) apply(l, r float64) float64 {
	switch op {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	default:
		panic("mexe: invalid operator " + op.String())
	}
}

// TokenKind is the variant of a Token.
type TokenKind uint8

const (
	TokenNone TokenKind = iota
	// TokenLeftParen is an open parenthesis.
	TokenLeftParen
	// TokenRightParen is a close parenthesis.
	TokenRightParen
	// TokenNumber is a numeric literal. The token's Num holds its value.
	TokenNumber
	// TokenOp is a binary operator or unary minus. The token's Op holds it.
	TokenOp
	// TokenEOI marks the end of the input. Every token sequence ends with
	// exactly one.
	TokenEOI
)

//go:generate go mod edit -require=golang.org/x/tools@v0.41.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// Token is a lexical unit of an expression.
type Token struct {
	Kind TokenKind
	// Op is the operator of a TokenOp.
	Op Operator
	// Num is the value of a TokenNumber.
	Num float64
	// Pos is the byte index of the start of the token in the source. For
	// TokenEOI it is the length of the source.
	Pos int
}

// String renders the token as it would appear in an expression, or EOI for
// the end marker.
func (t Token) String() string {
	switch t.Kind {
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenNumber:
		return strconv.FormatFloat(t.Num, 'f', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenEOI:
		return "EOI"
	default:
		return t.Kind.String()
	}
}
