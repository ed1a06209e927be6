package mexe

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind
	num  float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

//go:generate go mod edit -require=golang.org/x/tools@v0.41.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// op returns the operator of a binary node.
func (k nodeKind) op() Operator {
	switch k {
	case nodeAdd:
		return Add
	case nodeSub:
		return Sub
	case nodeMul:
		return Mul
	case nodeDiv:
		return Div
	default:
		panic("mexe: no operator for node kind " + k.String())
	}
}

// treeBuilder folds productions into syntax tree nodes.
type treeBuilder struct{}

func (treeBuilder) num(v float64) *node {
	return &node{kind: nodeNum, num: v}
}

func (treeBuilder) neg(x *node) *node {
	return &node{kind: nodeNeg, left: x}
}

func (treeBuilder) binary(op Operator, l, r *node) *node {
	var k nodeKind
	switch op {
	case Add:
		k = nodeAdd
	case Sub:
		k = nodeSub
	case Mul:
		k = nodeMul
	case Div:
		k = nodeDiv
	default:
		panic("mexe: invalid operator " + op.String())
	}
	return &node{kind: k, left: l, right: r}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteByte(n.kind.op().Symbol())
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("mexe: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
