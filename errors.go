package minirs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEntryPoint   = errors.New("missing entry point: no function named main")
	ErrNotFound            = errors.New("couldn't find referenced variable")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrInvalidTarget       = errors.New("invalid increment/decrement target")
	ErrCyclicReference     = errors.New("cyclic reference")
)

// SyntaxError reports malformed source. Pos is a byte offset.
type SyntaxError struct {
	Msg string
	Pos int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s (%d)", e.Msg, e.Pos)
}

type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrNotFound
}

type OperatorError struct {
	Op    Operator
	Unary bool
}

func (e *OperatorError) Error() string {
	if e.Unary {
		return fmt.Sprintf("%v: unary %v", ErrUnsupportedOperator, e.Op)
	}
	return fmt.Sprintf("%v: %v", ErrUnsupportedOperator, e.Op)
}

func (e *OperatorError) Unwrap() error {
	return ErrUnsupportedOperator
}

// Error is returned by the driver for any parse or run failure. The cause is
// kept so callers can still branch on it with errors.Is and errors.As.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "invalid input: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
