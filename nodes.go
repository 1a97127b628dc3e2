package scicalc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an arithmetic expression.
type node struct {
	kind nodeKind

	// name is the literal text of a nodeNum.
	name string
	// x is the value of a nodeNum.
	x float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // x

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	case nodeNop:
		return "Nop"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n with every term bracketed, alternating round and square
// brackets by depth.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd:
		n.binary(b, " + ", square)
	case nodeSub:
		n.binary(b, " - ", square)
	case nodeMul:
		n.binary(b, " * ", square)
	case nodeDiv:
		n.binary(b, " / ", square)
	case nodePow:
		n.binary(b, " ^ ", square)
	default:
		panic("scicalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

func (n *node) binary(b *strings.Builder, op string, square bool) {
	n.left.fmt(b, !square)
	b.WriteString(op)
	n.right.fmt(b, !square)
}
