package splitexpr

import "strconv"

// SyntaxError is an error indicating a token that cannot take the place the
// builder chose for it: a lone operator, or a terminal selected as a root.
// It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the token's text.
	Text string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "invalid syntax: "+strconv.Quote(err.Text))
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// ParenError is an error indicating parentheses that do not pair up within a
// span. It implements InputError.
type ParenError struct {
	// Col is the position of the parenthesis in error.
	Col int
	// Open and Close are the parentheses present. An empty string means that
	// side is missing from the span.
	Open  string
	Close string
}

func (err *ParenError) Error() string {
	switch {
	case err.Close == "":
		return errpos(err.Col, "open parenthesis with no close")
	case err.Open == "":
		return errpos(err.Col, "close parenthesis with no open")
	}
	return errpos(err.Col, "close parenthesis before open")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// EmptyOperandError is an error indicating a root operator at the edge of
// its span, i.e. an operator missing its left or right operand. It
// implements InputError.
type EmptyOperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator's text.
	Op string
}

func (err *EmptyOperandError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" missing an operand")
}

func (err *EmptyOperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a span with no tokens: an
// empty line or an empty parenthesis pair. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the close parenthesis, or 1 for an empty line.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "empty parentheses")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from lexing
// or building implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*EmptyOperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
