package calc

import (
	"strings"
)

// node is a node in the expression tree. Every node exclusively owns its
// children.
type node struct {
	kind nodeKind

	num Rational

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // num

	nodeNeg  // evaluate left, then negate
	nodeNop  // evaluate left
	nodeAdd  // evaluate left, add right
	nodeSub  // evaluate left, sub right
	nodeMul  // evaluate left, mul right
	nodeDiv  // evaluate left, div by right
	nodeMod  // evaluate left, mod right
	nodePow  // evaluate left, exp by right
	nodeRoot // evaluate left, square root
	nodeLog  // evaluate right, log in base left
)

var nodeNames = [...]string{
	nodeNone: "None",
	nodeNum:  "Num",
	nodeNeg:  "Neg",
	nodeNop:  "Nop",
	nodeAdd:  "Add",
	nodeSub:  "Sub",
	nodeMul:  "Mul",
	nodeDiv:  "Div",
	nodeMod:  "Mod",
	nodePow:  "Pow",
	nodeRoot: "Root",
	nodeLog:  "Log",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "nodeKind(?)"
	}
	return nodeNames[k]
}

// infix is the symbol written between the operands of binary nodes.
var infix = [...]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeMod: " % ",
	nodePow: " ^ ",
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
		b.WriteString(n.num.String())
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b, !square)
		b.WriteString(infix[n.kind])
		n.right.fmt(b, !square)
	case nodeRoot:
		b.WriteString("sqrt ")
		n.left.fmt(b, !square)
	case nodeLog:
		b.WriteString("log ")
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// eval reduces the subtree to a single value.
func (n *node) eval() Rational {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeNeg:
		return n.left.eval().Neg()
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		return n.left.eval().Add(n.right.eval())
	case nodeSub:
		return n.left.eval().Sub(n.right.eval())
	case nodeMul:
		return n.left.eval().Mul(n.right.eval())
	case nodeDiv:
		return n.left.eval().Quo(n.right.eval())
	case nodeMod:
		return n.left.eval().Mod(n.right.eval())
	case nodePow:
		return n.left.eval().Pow(n.right.eval())
	case nodeRoot:
		return n.left.eval().Sqrt()
	case nodeLog:
		return n.right.eval().Log(n.left.eval())
	default:
		panic("calc: invalid expression node " + n.kind.String())
	}
}
