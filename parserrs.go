package calc

import "strconv"

// StreamError is an error indicating a token stream that cannot be parsed at
// all, either because it is empty or because it contains an invalid token. It
// implements InputError.
type StreamError struct {
	// Col is the position of the invalid token, or 0 for an empty stream.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *StreamError) Error() string {
	if err.Col <= 0 {
		return err.Msg
	}
	return errpos(err.Col, err.Msg)
}

func (err *StreamError) Pos() int {
	return err.Col
}

// PositionalError is an error indicating an operator that is missing an
// operand which should follow it. It implements InputError.
type PositionalError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator token.
	Operator string
	// Need is the number of operands the operator takes after it.
	Need int
}

func (err *PositionalError) Error() string {
	s := "operand"
	if err.Need > 1 {
		s = strconv.Itoa(err.Need) + " operands"
	}
	return errpos(err.Col, "expected "+s+" after "+strconv.Quote(err.Operator))
}

func (err *PositionalError) Pos() int {
	return err.Col
}

// TypeError is an error indicating a token used where a number is required.
// It implements InputError.
type TypeError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *TypeError) Error() string {
	return errpos(err.Col, "number expected, got "+strconv.Quote(err.Token))
}

func (err *TypeError) Pos() int {
	return err.Col
}

// UnknownLiteralError is an error indicating a variable that has never been
// assigned. It implements InputError.
type UnknownLiteralError struct {
	// Col is the position of the literal.
	Col int
	// Name is the literal.
	Name string
}

func (err *UnknownLiteralError) Error() string {
	return errpos(err.Col, "unknown literal "+strconv.Quote(err.Name))
}

func (err *UnknownLiteralError) Pos() int {
	return err.Col
}

// UnsupportedCombinationError is an error indicating a forward operator
// directly following a complete operand, as in "2 sqrt 4", where it would
// have to bind into the expression already parsed. It implements InputError.
type UnsupportedCombinationError struct {
	// Col is the position of the forward operator.
	Col int
	// Operator is the forward operator.
	Operator string
}

func (err *UnsupportedCombinationError) Error() string {
	return errpos(err.Col, "forward operator "+strconv.Quote(err.Operator)+" cannot follow an operand")
}

func (err *UnsupportedCombinationError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, if any.
	Left string
	// Right is the closing parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating empty parentheses.
type EmptyExpressionError struct {
	// Col is the position of the closing parenthesis.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression in parentheses")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the 1-based rune column of the
	// token that caused it.
	Pos() int
}

var (
	_ InputError = (*StreamError)(nil)
	_ InputError = (*PositionalError)(nil)
	_ InputError = (*TypeError)(nil)
	_ InputError = (*UnknownLiteralError)(nil)
	_ InputError = (*UnsupportedCombinationError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
