package mexe

import (
	"strconv"
	"strings"
)

// Text is the set of string-like types that expressions can be given as.
type Text interface {
	~string | ~[]byte
}

// Eval evaluates an arithmetic expression. The expression is evaluated as it
// is parsed, without building a syntax tree.
func Eval[S Text](expr S, opts ...ParseOption) (float64, error) {
	p := newParsectx(opts)
	toks, err := tokenize(string(expr), &p)
	if err != nil {
		return 0, err
	}
	return parseTokens[float64, evaluator](toks, evaluator{}, &p)
}

// EvalBinary evaluates an expression that must be exactly one operation
// between two numbers, e.g. "5.5 / 5". It does not accept parentheses or
// unary minus. When it succeeds, the result is the same as that of Eval.
func EvalBinary[S Text](expr S, opts ...ParseOption) (float64, error) {
	p := newParsectx(opts)
	toks, err := tokenize(string(expr), &p)
	if err != nil {
		return 0, err
	}
	return evalBinary(toks)
}

// MustEval is like Eval but panics if the expression cannot be evaluated.
func MustEval(expr string, opts ...ParseOption) float64 {
	r, err := Eval(expr, opts...)
	if err != nil {
		panic("mexe: MustEval(" + strconv.Quote(expr) + "): " + err.Error())
	}
	return r
}

// Expr is a parsed expression. An Expr is immutable and safe for concurrent
// use.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression into a syntax tree that can be evaluated later
// or printed. The given options are applied in order.
func Parse[S Text](expr S, opts ...ParseOption) (*Expr, error) {
	p := newParsectx(opts)
	toks, err := tokenize(string(expr), &p)
	if err != nil {
		return nil, err
	}
	n, err := parseTokens[*node, treeBuilder](toks, treeBuilder{}, &p)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// Eval evaluates the expression. The result is identical to that of the
// package-level Eval on the same source. Evaluation uses an explicit stack, so
// it does not recurse however deep the tree is.
func (e *Expr) Eval() float64 {
	type work struct {
		n *node
		// ready indicates the node's operands are already on the stack.
		ready bool
	}
	stack := make([]float64, 0, 8)
	todo := []work{{n: e.n}}
	for len(todo) > 0 {
		w := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		n := w.n
		switch {
		case n.kind == nodeNum:
			stack = append(stack, n.num)
		case !w.ready:
			todo = append(todo, work{n: n, ready: true})
			if n.right != nil {
				todo = append(todo, work{n: n.right})
			}
			todo = append(todo, work{n: n.left})
		case n.kind == nodeNeg:
			stack[len(stack)-1] = -stack[len(stack)-1]
		default:
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			*l = n.kind.op().apply(*l, r)
		}
	}
	if len(stack) != 1 {
		panic("mexe: inconsistent stack: " + strconv.Itoa(len(stack)) + " items (bad AST?)")
	}
	return stack[0]
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}
