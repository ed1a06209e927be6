package mexe

import (
	"errors"
	"strconv"
)

// lexState is the state of the number automaton in the tokenizer.
type lexState uint8

const (
	// lexNormal is between tokens.
	lexNormal lexState = iota
	// lexInt is reading the digits before a decimal point.
	lexInt
	// lexFrac is reading the digits after a decimal point.
	lexFrac
)

// UTF-8 encodings of × and ÷ share a lead byte.
const (
	utf8Lead   = 0xc3
	utf8Times  = 0x97
	utf8Obelus = 0xb7
)

type lexer struct {
	src    string
	tokens []Token
	state  lexState
	// start is the index of the first digit of the number being read.
	start int
}

// Tokenize splits an expression into tokens. The result always ends with
// exactly one TokenEOI. Only UnicodeOperators affects tokenizing; other
// options are accepted and ignored.
func Tokenize(src string, opts ...ParseOption) ([]Token, error) {
	p := newParsectx(opts)
	return tokenize(src, &p)
}

// tokenize scans src once from left to right. Spaces separate tokens and are
// otherwise ignored.
func tokenize(src string, p *parsectx) ([]Token, error) {
	l := lexer{
		src:    src,
		tokens: make([]Token, 0, len(src)/2+2),
	}
	for i := 0; i < len(src); i++ {
		c := src[i]
		var tok Token
		switch {
		case c == ' ':
			if err := l.flush(i); err != nil {
				return nil, err
			}
			continue
		case '0' <= c && c <= '9':
			if l.state == lexNormal {
				l.state = lexInt
				l.start = i
			}
			continue
		case c == '.':
			if l.state != lexInt {
				return nil, &CharError{Index: i, Char: c, Kind: KindUnexpectedCharacter}
			}
			l.state = lexFrac
			continue
		case c == '(':
			tok = Token{Kind: TokenLeftParen}
		case c == ')':
			tok = Token{Kind: TokenRightParen}
		case c == '+', c == '-', c == '*', c == '/':
			tok = Token{Kind: TokenOp, Op: Operator(c)}
		case c == utf8Lead && p.unicode && i+1 < len(src) && src[i+1] == utf8Times:
			tok = Token{Kind: TokenOp, Op: Mul}
		case c == utf8Lead && p.unicode && i+1 < len(src) && src[i+1] == utf8Obelus:
			tok = Token{Kind: TokenOp, Op: Div}
		default:
			return nil, &CharError{Index: i, Char: c, Kind: KindInvalidCharacter}
		}
		if err := l.flush(i); err != nil {
			return nil, err
		}
		tok.Pos = i
		l.tokens = append(l.tokens, tok)
		if c == utf8Lead {
			// Skip the continuation byte.
			i++
		}
	}
	if err := l.flush(len(src)); err != nil {
		return nil, err
	}
	l.tokens = append(l.tokens, Token{Kind: TokenEOI, Pos: len(src)})
	return l.tokens, nil
}

// flush emits the number being read, if any, as the span up to end.
func (l *lexer) flush(end int) error {
	if l.state == lexNormal {
		return nil
	}
	if l.state == lexFrac && l.src[end-1] == '.' {
		// A decimal point needs digits on both sides.
		return &CharError{Index: end - 1, Char: '.', Kind: KindUnexpectedCharacter}
	}
	text := l.src[l.start:end]
	v, err := strconv.ParseFloat(text, 64)
	// Digit strings too long for float64 parse to ±Inf with ErrRange, which
	// is the value we want.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("mexe: invalid number " + strconv.Quote(text) + " (" + err.Error() + ")")
	}
	l.tokens = append(l.tokens, Token{Kind: TokenNumber, Num: v, Pos: l.start})
	l.state = lexNormal
	return nil
}
