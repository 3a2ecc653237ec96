package calc

// OpKind is an operator as it appears in the token stream. It is lexical
// only; the syntactic form of an operation is a node in an Expr.
type OpKind int8

// Operators in the token stream. Mul, Div, Add, Sub, Pow, and Mod are infix;
// Root and Log are forward.
const (
	Mul OpKind = iota
	Div
	Add
	Sub
	Pow
	Root
	Log
	Mod
)

var opinfo = [...]struct {
	sym   string
	prec  int8
	arity int
	fwd   bool
}{
	Mul:  {"*", 2, 2, false},
	Div:  {"/", 2, 2, false},
	Add:  {"+", 1, 2, false},
	Sub:  {"-", 1, 2, false},
	Pow:  {"^", 3, 2, false},
	Root: {"sqrt", 3, 1, true},
	Log:  {"log", 3, 2, true},
	Mod:  {"%", 2, 2, false},
}

// Prec returns the precedence rank of the operator: 1 for addition and
// subtraction, 2 for multiplication, division, and modulo, and 3 for powers,
// roots, and logarithms. Higher ranks bind tighter.
func (k OpKind) Prec() int {
	return int(opinfo[k].prec)
}

// Arity returns the number of operands the operator takes.
func (k OpKind) Arity() int {
	return opinfo[k].arity
}

// Forward returns whether the operator precedes all of its operands, as in
// "sqrt x" and "log b x".
func (k OpKind) Forward() bool {
	return opinfo[k].fwd
}

// Trailing returns the number of operands that follow the operator in the
// input: all of them for forward operators, one for infix operators.
func (k OpKind) Trailing() int {
	if k.Forward() {
		return k.Arity()
	}
	return 1
}

func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opinfo) {
		return "OpKind(?)"
	}
	return opinfo[k].sym
}

// operator is a parsing precedence. It is derived from an OpKind for infix
// operators and defined separately for unary signs and juxtaposition.
type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the infix precedence of an operator. Forward operators have no
// infix form, so their result has an op of nodeNone.
//
//	+ -        5   left
//	* / %      10  left (also juxtaposition)
//	unary - +  12  right
//	^          15  left
func binop(k OpKind) operator {
	switch k {
	case Add:
		return operator{5, false, nodeAdd}
	case Sub:
		return operator{5, false, nodeSub}
	case Mul:
		return operator{10, false, nodeMul}
	case Div:
		return operator{10, false, nodeDiv}
	case Mod:
		return operator{10, false, nodeMod}
	case Pow:
		return operator{15, false, nodePow}
	default:
		return operator{}
	}
}

// unop gets the prefix sign operator for an OpKind. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(k OpKind) operator {
	switch k {
	case Add:
		return operator{12, true, nodeNop}
	case Sub:
		return operator{12, true, nodeNeg}
	default:
		return operator{}
	}
}

var (
	// termprec is the precedence of implicit multiplication between
	// juxtaposed operands. It matches *.
	termprec = operator{10, false, nodeMul}
	// argprec is the precedence of the operands of forward operators, which
	// bind tighter than any infix operator: sqrt 4^2 is (sqrt 4)^2.
	argprec = operator{16, false, nodeNone}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
