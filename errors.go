package bignum

import "errors"

var (
	// ErrInvalidFormat is returned (wrapped) when decimal text contains
	// anything other than the ASCII digits '0' to '9'.
	ErrInvalidFormat = errors.New("bignum: invalid decimal format")

	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrUnderflow is returned when a subtraction would produce a value
	// below zero.
	ErrUnderflow = errors.New("bignum: unsigned underflow")
)
