package pcomb

import (
	"errors"
	"fmt"
)

// Result is the outcome of a parser invocation.
//
// On success, Matched is true, Value holds the parsed value and Rest holds
// the remaining input, which is always a suffix of the input handed to the
// parser. On failure, Matched is false, Value is the zero value and Rest is
// the input the failing parser has been offered, unmodified.
type Result[T any] struct {
	Rest    string // unconsumed input
	Value   T      // parsed value, zero on failure
	Matched bool   // did the parser recognize a prefix of the input?
}

// Success creates a successful Result.
func Success[T any](rest string, value T) Result[T] {
	return Result[T]{Rest: rest, Value: value, Matched: true}
}

// Failure creates a failing Result. input is the input the parser has been offered.
func Failure[T any](input string) Result[T] {
	return Result[T]{Rest: input}
}

// Unpack returns the components of a Result.
func (r Result[T]) Unpack() (string, T, bool) {
	return r.Rest, r.Value, r.Matched
}

// Simple stringer for debugging purposes.
func (r Result[T]) String() string {
	if !r.Matched {
		return fmt.Sprintf("[no match at %q]", preview(r.Rest))
	}
	return fmt.Sprintf("[%v, rest=%q]", r.Value, preview(r.Rest))
}

// ErrNoMatch is returned by Run if the parser does not recognize the input.
// ErrTrailingInput is returned by Run if the parser does not consume the
// complete input.
var (
	ErrNoMatch       = errors.New("pcomb: input not recognized")
	ErrTrailingInput = errors.New("pcomb: unconsumed input after match")
)

// Run applies p to input and requires p to consume all of it.
// It is a convenience for clients which are interested in a Go error rather
// than a Result. Partial matches return the value parsed so far together
// with ErrTrailingInput.
func Run[T any](p Parser[T], input string) (T, error) {
	res := p.Parse(input)
	if !res.Matched {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrNoMatch, preview(res.Rest))
	}
	if res.Rest != "" {
		return res.Value, fmt.Errorf("%w: %q", ErrTrailingInput, preview(res.Rest))
	}
	return res.Value, nil
}
