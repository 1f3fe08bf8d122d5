package calculator

import (
	"errors"
	"strconv"
)

// ErrMalformed is the error that every error caused by an ill-formed
// expression unwraps to.
var ErrMalformed = errors.New("malformed expression")

// MalformedExpressionError is an error indicating that evaluation needed an
// operand which the expression does not supply, or that the expression left
// more than one value behind. It implements InputError and unwraps to
// ErrMalformed.
type MalformedExpressionError struct {
	// Col is the position of the operator which lacked an operand, or of the
	// end of the expression if no operator was involved.
	Col int
	// Operator is the operator which lacked an operand. It is empty if the
	// error was found after all operators were applied.
	Operator string
	// Values is the number of values left after applying every operator. It
	// is meaningful only if Operator is empty.
	Values int
}

func (err *MalformedExpressionError) Error() string {
	if err.Operator != "" {
		return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" is missing an operand")
	}
	if err.Values == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, strconv.Itoa(err.Values)+" values with no operator between them")
}

func (err *MalformedExpressionError) Pos() int {
	return err.Col
}

func (err *MalformedExpressionError) Unwrap() error {
	return ErrMalformed
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*MalformedExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
