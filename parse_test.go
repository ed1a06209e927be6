package mexe

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		tree string
	}{
		{"num", "1", "(1)"},
		{"decimal", "0.5", "(0.5)"},
		{"paren", "(1)", "(1)"},
		{"multi", "((((1))))", "(1)"},
		{"neg", "-1", "(-[1])"},
		{"negparen", "-(1)", "(-[1])"},
		{"negsum", "-(1 + 2)", "(-[(1) + (2)])"},
		{"add", "1+2", "([1] + [2])"},
		{"sub", "1-2", "([1] - [2])"},
		{"mul", "1*2", "([1] * [2])"},
		{"div", "1/2", "([1] / [2])"},
		{"addleft", "1-2-3", "([(1) - (2)] - [3])"},
		{"mulleft", "8/2/2", "([(8) / (2)] / [2])"},
		{"prec", "1+2*3", "([1] + [(2) * (3)])"},
		{"precleft", "1*2+3", "([(1) * (2)] + [3])"},
		{"group", "(1+2)*3", "([(1) + (2)] * [3])"},
		{"negmul", "-2*3", "([-(2)] * [3])"},
		{"subneg", "1 - -2", "([1] - [-(2)])"},
		{"unicode", "2×3÷4", "([(2) * (3)] / [4])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := Parse(c.src, UnicodeOperators())
			require.NoError(t, err)
			assert.Equal(t, c.tree, a.String())
		})
	}
}

func TestParseTokensInternalErrors(t *testing.T) {
	cases := []struct {
		name string
		toks []Token
	}{
		{"empty", nil},
		{"no-eoi", []Token{num(1, 0)}},
		{"no-eoi-tail", []Token{num(1, 0), op(Add, 1), num(2, 2)}},
		{"no-eoi-group", []Token{lp(0), num(1, 1)}},
		{"no-eoi-neg", []Token{op(Sub, 0)}},
		{"double-eoi", []Token{num(1, 0), eoi(1), eoi(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := parseTokens[float64, evaluator](c.toks, evaluator{}, &defaultParsectx)
			assert.ErrorIs(t, err, ErrInternalParser)
			_, err = parseTokens[*node, treeBuilder](c.toks, treeBuilder{}, &defaultParsectx)
			assert.ErrorIs(t, err, ErrInternalParser)
		})
	}
}

func TestEvalBinaryShapes(t *testing.T) {
	cases := []struct {
		name string
		toks []Token
		err  error
	}{
		{"short", []Token{num(1, 0), eoi(1)}, ErrInvalidBinaryExpression},
		{"long", []Token{num(1, 0), op(Add, 1), num(2, 2), op(Add, 3), eoi(4)}, ErrInvalidBinaryExpression},
		{"no-eoi", []Token{num(1, 0), op(Add, 1), num(2, 2), num(3, 3)}, ErrInvalidBinaryExpression},
		{"lhs", []Token{lp(0), op(Add, 1), num(2, 2), eoi(3)}, ErrMissingOperand},
		{"rhs", []Token{num(1, 0), op(Add, 1), rp(2), eoi(3)}, ErrMissingOperand},
		{"op", []Token{num(1, 0), lp(1), num(2, 2), eoi(3)}, ErrMissingOperator},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := evalBinary(c.toks)
			assert.ErrorIs(t, err, c.err)
		})
	}
	r, err := evalBinary([]Token{num(7, 0), op(Div, 1), num(2, 2), eoi(3)})
	require.NoError(t, err)
	assert.Equal(t, 3.5, r)
}

func TestNodeOpPanics(t *testing.T) {
	assert.Panics(t, func() { nodeNum.op() })
	assert.Panics(t, func() { treeBuilder{}.binary(Operator('%'), nil, nil) })
	assert.Panics(t, func() { Operator('%').apply(1, 1) })
	assert.Panics(t, func() { _ = (&node{}).String() })
}

// TestDeepTreeEval checks that evaluating a parsed tree does not depend on the
// shape of the tree.
func TestDeepTreeEval(t *testing.T) {
	var n *node
	b := treeBuilder{}
	n = b.num(0)
	for i := 1; i <= 100000; i++ {
		n = b.binary(Add, n, b.neg(b.num(float64(-i))))
	}
	e := Expr{n: n}
	assert.Equal(t, float64(100000*100001/2), e.Eval())
}

// TestEvalMatchesTree generates expressions from the grammar and checks that
// the fused evaluator and the tree evaluator agree bit for bit.
func TestEvalMatchesTree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		src := genExpr(rng, 4)
		want, err := Eval(src)
		require.NoError(t, err, src)
		a, err := Parse(src)
		require.NoError(t, err, src)
		got := a.Eval()
		if math.Float64bits(want) != math.Float64bits(got) && !(math.IsNaN(want) && math.IsNaN(got)) {
			t.Errorf("%q: Eval gave %g, tree gave %g (%v)", src, want, got, a)
		}
	}
}

func TestParseErrorsMatchEval(t *testing.T) {
	srcs := []string{"", "1++", "(1", "1)", ".5", "1 $", "--1", "()", "1 2"}
	for _, src := range srcs {
		_, perr := Parse(src)
		_, eerr := Eval(src)
		require.Error(t, perr, src)
		assert.Equal(t, eerr.Error(), perr.Error(), src)
		assert.Equal(t, KindOf(eerr), KindOf(perr), src)
	}
}

func TestUnexpected(t *testing.T) {
	assert.True(t, errors.Is(unexpected(eoi(4)), ErrUnexpectedEndOfInput))
	var te *TokenError
	require.True(t, errors.As(unexpected(num(2.5, 3)), &te))
	assert.Equal(t, TokenError{Index: 3, Token: "2.5"}, *te)
}
