package scheme

import (
	"errors"
)

var (
	ErrUnexpectedChar      = errors.New("unexpected character")
	ErrIntegerRange        = errors.New("integer literal out of range")
	ErrUnmatchedBracket    = errors.New("no matching open bracket")
	ErrMisplacedDot        = errors.New("dot must come before the last element of a list")
	ErrMissingCloseBracket = errors.New("expected close bracket after dotted tail")

	ErrUnboundSymbol  = errors.New("unbound symbol")
	ErrNotCallable    = errors.New("not callable")
	ErrEmptyList      = errors.New("empty list can not be evaluated")
	ErrArity          = errors.New("wrong number of arguments")
	ErrTypeMismatch   = errors.New("types don't match")
	ErrIndexRange     = errors.New("index out of range")
	ErrDivisionByZero = errors.New("division by zero")
)

// SyntaxError is returned by the tokenizer and the reader for malformed input.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// RuntimeError is returned by the evaluator and the built-in library.
type RuntimeError struct {
	Err error
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

func syntaxError(err error) error {
	if err == nil {
		return nil
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return err
	}
	return &SyntaxError{Err: err}
}

func runtimeError(err error) error {
	if err == nil {
		return nil
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}
	return &RuntimeError{Err: err}
}
