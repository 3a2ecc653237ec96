package calc

// Sanitize inserts an implicit multiplication between each pair of adjacent
// operands, so that "2 x" becomes "2 * x". A pair is left alone when the token
// two positions before its right operand is a forward operator, because then
// the pair are the operands of "log b x" or the boundary after "sqrt x".
//
// Streams of fewer than two tokens are returned as they are. Otherwise, an
// invalid token is a *StreamError. The input slice is not modified.
func Sanitize(toks []Token) ([]Token, error) {
	if len(toks) <= 1 {
		return toks, nil
	}
	for _, tok := range toks {
		if tok.Kind == TokenInvalid {
			return nil, &StreamError{Col: tok.Pos, Msg: "stream contains invalid tokens"}
		}
	}
	v := make([]Token, 0, len(toks)+len(toks)/2)
	for i, tok := range toks {
		if i > 0 && tok.operand() && toks[i-1].operand() {
			if i < 2 || !(toks[i-2].Kind == TokenOp && toks[i-2].Op.Forward()) {
				v = append(v, Token{Kind: TokenOp, Op: Mul, Pos: tok.Pos})
			}
		}
		v = append(v, tok)
	}
	return v, nil
}
