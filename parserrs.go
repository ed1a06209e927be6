package mexe

import (
	"errors"
	"strconv"
)

// Kind classifies the errors that evaluation can produce.
type Kind int8

const (
	// KindNone is the kind of a nil error or of errors not produced by this
	// package.
	KindNone Kind = iota
	// KindInvalidCharacter is a byte outside the expression alphabet.
	KindInvalidCharacter
	// KindUnexpectedCharacter is a decimal point in an invalid position.
	KindUnexpectedCharacter
	// KindInvalidBinaryExpression is input to EvalBinary that is not exactly
	// two numbers separated by an operator.
	KindInvalidBinaryExpression
	// KindMissingOperand is input to EvalBinary with an operand position that
	// does not hold a number.
	KindMissingOperand
	// KindMissingOperator is input to EvalBinary whose middle token is not an
	// operator.
	KindMissingOperator
	// KindUnexpectedToken is a token the grammar does not allow where it
	// appears.
	KindUnexpectedToken
	// KindUnexpectedEndOfInput is input that ends where the grammar requires
	// another token.
	KindUnexpectedEndOfInput
	// KindInternalParserError is an inconsistent token sequence. It indicates
	// a bug rather than bad input.
	KindInternalParserError
	// KindTooDeep is input nested more deeply than the parser allows.
	KindTooDeep
)

//go:generate go mod edit -require=golang.org/x/tools@v0.41.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

var (
	// ErrInvalidBinaryExpression is returned by EvalBinary for input that
	// does not have the shape number, operator, number.
	ErrInvalidBinaryExpression = errors.New("invalid binary expression")
	// ErrMissingOperand is returned by EvalBinary when an operand position
	// holds something other than a number.
	ErrMissingOperand = errors.New("missing operand")
	// ErrMissingOperator is returned by EvalBinary when the middle token is
	// not an operator.
	ErrMissingOperator = errors.New("missing operator")
	// ErrUnexpectedEndOfInput indicates input that ends early, e.g. with an
	// unclosed parenthesis or a trailing operator.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrInternalParser indicates that the parser was given a token sequence
	// the tokenizer cannot produce.
	ErrInternalParser = errors.New("internal parser error")
)

// CharError is an error indicating a byte the tokenizer cannot accept. It
// implements InputError.
type CharError struct {
	// Index is the byte index of the character.
	Index int
	// Char is the offending byte.
	Char byte
	// Kind is KindInvalidCharacter for bytes outside the alphabet or
	// KindUnexpectedCharacter for a misplaced decimal point.
	Kind Kind
}

func (err *CharError) Error() string {
	c := strconv.Quote(string([]byte{err.Char}))
	if err.Kind == KindUnexpectedCharacter {
		return errpos(err.Index, "unexpected character "+c)
	}
	return errpos(err.Index, "invalid character "+c)
}

func (err *CharError) Pos() int {
	return err.Index
}

// TokenError is an error indicating a token that is not valid where it
// appears. It implements InputError.
type TokenError struct {
	// Index is the byte index of the token.
	Index int
	// Token is the text of the token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Index, "unexpected token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Index
}

// DepthError is an error indicating parentheses nested more deeply than the
// parser's maximum depth. It implements InputError.
type DepthError struct {
	// Index is the byte index of the parenthesis that exceeded the limit.
	Index int
	// Max is the maximum depth that was in effect.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Index, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *DepthError) Pos() int {
	return err.Index
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// unexpected creates the error for tok appearing where the grammar does not
// allow it.
func unexpected(tok Token) error {
	if tok.Kind == TokenEOI {
		return ErrUnexpectedEndOfInput
	}
	return &TokenError{Index: tok.Pos, Token: tok.String()}
}

// InputError is an error with position information. Every error resulting from
// invalid input that can be attributed to a single location implements
// InputError.
type InputError interface {
	error
	// Pos returns the byte index in the source of the cause of the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*DepthError)(nil)
)

// KindOf classifies err. Wrapped errors are unwrapped as by errors.As and
// errors.Is.
func KindOf(err error) Kind {
	var (
		ce *CharError
		te *TokenError
		de *DepthError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &ce):
		return ce.Kind
	case errors.As(err, &te):
		return KindUnexpectedToken
	case errors.As(err, &de):
		return KindTooDeep
	case errors.Is(err, ErrInvalidBinaryExpression):
		return KindInvalidBinaryExpression
	case errors.Is(err, ErrMissingOperand):
		return KindMissingOperand
	case errors.Is(err, ErrMissingOperator):
		return KindMissingOperator
	case errors.Is(err, ErrUnexpectedEndOfInput):
		return KindUnexpectedEndOfInput
	case errors.Is(err, ErrInternalParser):
		return KindInternalParserError
	default:
		return KindNone
	}
}
