package mexe

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// genExpr generates a random expression from the grammar. depth bounds the
// parenthesis nesting. Binary operators are surrounded by spaces and unary
// minus is attached to its operand, so the result is also a valid Go
// expression.
func genExpr(rng *rand.Rand, depth int) string {
	var b strings.Builder
	b.WriteString(genTerm(rng, depth))
	for rng.Intn(5) < 2 {
		if rng.Intn(2) == 0 {
			b.WriteString(" + ")
		} else {
			b.WriteString(" - ")
		}
		b.WriteString(genTerm(rng, depth))
	}
	return b.String()
}

func genTerm(rng *rand.Rand, depth int) string {
	var b strings.Builder
	b.WriteString(genFactor(rng, depth))
	for rng.Intn(5) < 2 {
		if rng.Intn(2) == 0 {
			b.WriteString(" * ")
		} else {
			b.WriteString(" / ")
		}
		b.WriteString(genFactor(rng, depth))
	}
	return b.String()
}

func genFactor(rng *rand.Rand, depth int) string {
	neg := ""
	if rng.Intn(4) == 0 {
		neg = "-"
	}
	if depth > 0 && rng.Intn(3) == 0 {
		return neg + "(" + genExpr(rng, depth-1) + ")"
	}
	return neg + genNum(rng)
}

// genNum generates a number without redundant leading zeros, which Go would
// read as octal.
func genNum(rng *rand.Rand) string {
	var b strings.Builder
	if rng.Intn(6) == 0 {
		b.WriteByte('0')
	} else {
		b.WriteByte(byte('1' + rng.Intn(9)))
		for n := rng.Intn(4); n > 0; n-- {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
	}
	if rng.Intn(2) == 0 {
		b.WriteByte('.')
		for n := 1 + rng.Intn(3); n > 0; n-- {
			b.WriteByte(byte('0' + rng.Intn(10)))
		}
	}
	return b.String()
}

// refEval evaluates src with go/parser as an independent reference for
// precedence and associativity.
func refEval(src string) (float64, error) {
	x, err := goparser.ParseExpr(src)
	if err != nil {
		return 0, err
	}
	return refNode(x), nil
}

func refNode(x ast.Expr) float64 {
	switch x := x.(type) {
	case *ast.BasicLit:
		v, err := strconv.ParseFloat(x.Value, 64)
		if err != nil {
			panic(err)
		}
		return v
	case *ast.ParenExpr:
		return refNode(x.X)
	case *ast.UnaryExpr:
		if x.Op != token.SUB {
			panic("unexpected unary " + x.Op.String())
		}
		return -refNode(x.X)
	case *ast.BinaryExpr:
		l, r := refNode(x.X), refNode(x.Y)
		switch x.Op {
		case token.ADD:
			return l + r
		case token.SUB:
			return l - r
		case token.MUL:
			return l * r
		case token.QUO:
			return l / r
		}
		panic("unexpected binary " + x.Op.String())
	default:
		panic(fmt.Sprintf("unexpected node %T", x))
	}
}

func sameFloat(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b) || math.IsNaN(a) && math.IsNaN(b)
}

// TestEvalMatchesReference compares evaluation of random expressions with an
// evaluator built on go/parser, which uses the same precedence and
// associativity rules.
func TestEvalMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		src := genExpr(rng, 5)
		want, err := refEval(src)
		if err != nil {
			t.Fatalf("reference could not parse %q: %v", src, err)
		}
		got, err := Eval(src)
		if err != nil {
			t.Errorf("%q: %v", src, err)
			continue
		}
		if !sameFloat(want, got) {
			t.Errorf("%q: want %g, got %g", src, want, got)
		}
		// Spacing does not matter.
		for _, s := range []string{strings.ReplaceAll(src, " ", ""), strings.ReplaceAll(src, " ", "   ")} {
			r, err := Eval(s)
			if err != nil || !sameFloat(got, r) {
				t.Errorf("%q: got %g, %v; want %g from %q", s, r, err, got, src)
			}
		}
	}
}
