package pcomb

import (
	"fmt"
	"strconv"
)

// Range is an inclusive range of repetition counts. A negative Max denotes a
// range open to the top.
type Range struct {
	Min int
	Max int
}

// AtLeast returns the range n… .
func AtLeast(n int) Range {
	return Range{Min: n, Max: -1}
}

// Between returns the range lo…hi, both inclusive.
func Between(lo, hi int) Range {
	return Range{Min: lo, Max: hi}
}

// Exactly returns the range n…n.
func Exactly(n int) Range {
	return Range{Min: n, Max: n}
}

// Contains reports whether count n is within r.
func (r Range) Contains(n int) bool {
	return n >= r.Min && (r.Max < 0 || n <= r.Max)
}

func (r Range) String() string {
	if r.Max < 0 {
		return strconv.Itoa(r.Min) + ".."
	}
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// Repetition applies p as often as it succeeds, collecting its values.
// Repetition stops at the first failure of p, which is not an error; the
// input is rolled back to the end of the last successful match.
//
// The repetition succeeds only if the number of matches is within bounds.
// Otherwise it fails with its own input, regardless of how many matches
// there have been. Matching is greedy and does not stop at bounds.Max.
//
// If p is able to succeed without consuming input, Repetition will not
// terminate.
func Repetition[T any](p Parser[T], bounds Range) Parser[[]T] {
	return ParserFunc[[]T](func(input string) Result[[]T] {
		values := make([]T, 0)
		rest := input
		for {
			r := p.Parse(rest)
			if !r.Matched {
				break
			}
			values = append(values, r.Value)
			rest = r.Rest
		}
		if !bounds.Contains(len(values)) {
			return Failure[[]T](input)
		}
		return Success(rest, values)
	})
}

// OneOrMore is Repetition(p, AtLeast(1)).
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return Repetition(p, AtLeast(1))
}

// ZeroOrMore is Repetition(p, AtLeast(0)). It never fails.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return Repetition(p, AtLeast(0))
}
