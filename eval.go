package calc

// Eval reduces the expression to a single value. Evaluation never fails;
// undefined operations produce Undefined.
func (e *Expr) Eval() Rational {
	return e.n.eval()
}

// Result is the outcome of evaluating one line.
type Result struct {
	// Value is the value of the line.
	Value Rational
	// Options are the options given in the line's prefix.
	Options Options
	// Tokens are the lexemes and tokens of the line if Options.Debug is set.
	Tokens []DebugToken
	// Expr is the expression tree built for the line.
	Expr *Expr
}

// Format formats the value as a fraction, or as a decimal number if the line
// asked for it.
func (r Result) Format() string {
	if r.Options.AsFloat {
		return r.Value.FloatString()
	}
	return r.Value.String()
}

// EvalLine evaluates a line, including its option prefix, binding and looking
// up variables in vars. An error affects only this line; vars is unchanged
// unless the line is a successful assignment.
func EvalLine(line string, vars *Vars) (Result, error) {
	text, opts := PreTokenize(line)
	r := Result{Options: opts}
	var toks []Token
	if opts.Debug {
		r.Tokens = DebugTokenize(text)
		toks = Tokens(r.Tokens)
	} else {
		toks = Tokenize(text)
	}
	toks, err := Sanitize(toks)
	if err != nil {
		return r, err
	}
	r.Expr, err = Build(toks, vars)
	if err != nil {
		return r, err
	}
	r.Value = r.Expr.Eval()
	return r, nil
}

// EvalString is a shortcut to tokenize and evaluate a line without an option
// prefix.
func EvalString(src string, vars *Vars) (Rational, error) {
	return Parse(Tokenize(src), vars)
}
