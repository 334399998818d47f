package pcomb

// Parser is the single abstraction of this package: something which tries to
// consume a prefix of an input string, producing a value of type T.
//
// Implementations must not keep state between calls to Parse.
type Parser[T any] interface {
	Parse(input string) Result[T]
}

// ParserFunc is an adapter to use ordinary functions as Parsers.
type ParserFunc[T any] func(input string) Result[T]

// Parse calls f(input).
func (f ParserFunc[T]) Parse(input string) Result[T] {
	return f(input)
}

// Lift turns a function into a Parser. It is equivalent to ParserFunc[T](f),
// but lets the compiler infer T.
func Lift[T any](f func(string) Result[T]) Parser[T] {
	return ParserFunc[T](f)
}

// Unit is the value of parsers which have nothing to report but the fact
// that they matched, e.g. literals.
type Unit struct{}

// Tuple is the value of a Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}
