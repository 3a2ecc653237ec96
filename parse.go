package calc

// Expr = Assign | Term
// Assign = literal '=' Term
// Term = Operand | Term Binop Term | Term Term
// Operand = number | literal | Sign Operand | Forward | '(' Term ')'
// Forward = ('sqrt' | 'rt' | 'root') Arg | ('log' | 'lg') Arg Arg
// Arg = number | literal | Sign Arg | Forward | '(' Term ')'
// Binop = '+' | '-' | '*' | '/' | '%' | '^'
// Sign = '+' | '-'
//
// Precedence, loosest first: + - ; * / % and juxtaposition ; unary signs ;
// ^ (left-associative, like the other infix operators) ; forward operator
// arguments.

// Expr is a built expression tree.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// assign is the variable the expression was assigned to, if any.
	assign string
}

type parser struct {
	toks []Token
	k    int
	vars *Vars
}

// peek returns the next token without consuming it.
func (p *parser) peek() (Token, bool) {
	if p.k >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.k], true
}

// next consumes the next token.
func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.k++
	}
	return tok, ok
}

// Build builds the expression tree for a sanitized token stream. Literals are
// replaced by their values in vars as they are read. If the stream has the
// form "name = ...", the value of the rest of the stream is bound to name in
// vars, and the tree for the rest of the stream is the result.
//
// A nil vars behaves as an empty table, and assignments to it are lost.
func Build(toks []Token, vars *Vars) (*Expr, error) {
	if len(toks) == 0 {
		return nil, &StreamError{Msg: "stream empty"}
	}
	for _, tok := range toks {
		if tok.Kind == TokenInvalid {
			return nil, &StreamError{Col: tok.Pos, Msg: "stream contains invalid tokens"}
		}
	}
	if vars == nil {
		vars = NewVars()
	}
	if len(toks) >= 2 && toks[0].Kind == TokenLiteral && toks[1].Kind == TokenEq {
		if len(toks) == 2 {
			return nil, &PositionalError{Col: toks[1].Pos, Operator: "=", Need: 1}
		}
		p := parser{toks: toks[2:], vars: vars}
		n, err := p.parse()
		if err != nil {
			return nil, err
		}
		vars.Set(toks[0].Name, n.eval())
		return &Expr{n: n, assign: toks[0].Name}, nil
	}
	p := parser{toks: toks, vars: vars}
	n, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// Parse sanitizes a token stream, builds it, and evaluates the result.
func Parse(toks []Token, vars *Vars) (Rational, error) {
	toks, err := Sanitize(toks)
	if err != nil {
		return Undefined, err
	}
	e, err := Build(toks, vars)
	if err != nil {
		return Undefined, err
	}
	return e.Eval(), nil
}

// parse parses the entire stream.
func (p *parser) parse() (*node, error) {
	n, err := p.parseterm(exprprec)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.next(); ok {
		// At the top level, parseterm stops early only on a close bracket.
		return nil, &BracketError{Col: tok.Pos, Right: ")"}
	}
	if n == nil {
		return nil, &StreamError{Msg: "stream empty"}
	}
	return n, nil
}

// parseterm parses a term containing operators more binding than until. It
// stops without consuming the first token that cannot continue the term. If
// there is no term at all, the result is nil with no error; callers must
// create an error in contexts where empty terms are illegal.
func (p *parser) parseterm(until operator) (*node, error) {
	n, err := p.parselhs(until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, ok := p.peek()
		if !ok {
			return n, nil
		}
		switch tok.Kind {
		case TokenNumber, TokenLiteral, TokenOpen:
			// (parsed) x -> (parsed) * (x)
			// sqrt 4 9 -> (sqrt 4) * (9)
			if !termprec.moreBinding(until) {
				return n, nil
			}
			rhs, err := p.parseterm(termprec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeMul, left: n, right: rhs}
		case TokenOp:
			if tok.Op.Forward() {
				// 2 sqrt 4 would need sqrt to reach into the parsed term.
				return nil, &UnsupportedCombinationError{Col: tok.Pos, Operator: tok.Op.String()}
			}
			prec := binop(tok.Op)
			if !prec.moreBinding(until) {
				return n, nil
			}
			p.next()
			rhs, err := p.parseterm(prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, &PositionalError{Col: tok.Pos, Operator: tok.Op.String(), Need: 1}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case TokenClose:
			return n, nil
		case TokenEq:
			return nil, &TypeError{Col: tok.Pos, Token: tok.text()}
		default:
			return nil, &StreamError{Col: tok.Pos, Msg: "stream contains invalid tokens"}
		}
	}
}

// parselhs parses the first operand of a term. Operators here are unary or
// forward. A close bracket or the end of the stream is left unconsumed with a
// nil result.
func (p *parser) parselhs(until operator) (*node, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind == TokenClose {
		return nil, nil
	}
	p.next()
	switch tok.Kind {
	case TokenNumber:
		return &node{kind: nodeNum, num: tok.Num}, nil
	case TokenLiteral:
		v, ok := p.vars.Lookup(tok.Name)
		if !ok {
			return nil, &UnknownLiteralError{Col: tok.Pos, Name: tok.Name}
		}
		return &node{kind: nodeNum, num: v}, nil
	case TokenOp:
		if tok.Op.Forward() {
			return p.parseforward(tok)
		}
		prec := unop(tok.Op)
		if prec.op == nodeNone {
			return nil, &TypeError{Col: tok.Pos, Token: tok.text()}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the enclosing precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseterm(prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, &PositionalError{Col: tok.Pos, Operator: tok.Op.String(), Need: 1}
		}
		return &node{kind: prec.op, left: rhs}, nil
	case TokenOpen:
		rhs, err := p.parseterm(exprprec)
		if err != nil {
			return nil, err
		}
		end, ok := p.next()
		if !ok {
			return nil, &BracketError{Col: tok.Pos, Left: "("}
		}
		// Within brackets, parseterm stops early only on a close bracket.
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.Pos}
		}
		return rhs, nil
	case TokenEq:
		return nil, &TypeError{Col: tok.Pos, Token: tok.text()}
	default:
		return nil, &StreamError{Col: tok.Pos, Msg: "stream contains invalid tokens"}
	}
}

// parseforward parses the arguments of a forward operator, which it follows
// in the stream.
func (p *parser) parseforward(op Token) (*node, error) {
	var args [2]*node
	for i := 0; i < op.Op.Arity(); i++ {
		arg, err := p.parselhs(argprec)
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, &PositionalError{Col: op.Pos, Operator: op.Op.String(), Need: op.Op.Arity()}
		}
		args[i] = arg
	}
	switch op.Op {
	case Root:
		return &node{kind: nodeRoot, left: args[0]}, nil
	case Log:
		return &node{kind: nodeLog, left: args[0], right: args[1]}, nil
	default:
		panic("calc: unknown forward operator " + op.Op.String())
	}
}

// Assigned returns the name of the variable the expression was bound to, or
// the empty string if it was not an assignment.
func (e *Expr) Assigned() string {
	return e.assign
}

// String creates a string representation of the expression tree, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
