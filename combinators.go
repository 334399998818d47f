package pcomb

// Pair sequences two parsers. p2 is run on the input p1 has left over.
// The value is a Tuple of both values, in order.
//
// If p2 fails, Pair fails with its own input, not with the input p2 has
// been offered.
func Pair[A, B any](p1 Parser[A], p2 Parser[B]) Parser[Tuple[A, B]] {
	return ParserFunc[Tuple[A, B]](func(input string) Result[Tuple[A, B]] {
		r1 := p1.Parse(input)
		if !r1.Matched {
			return Failure[Tuple[A, B]](r1.Rest)
		}
		r2 := p2.Parse(r1.Rest)
		if !r2.Matched {
			return Failure[Tuple[A, B]](input)
		}
		return Success(r2.Rest, Tuple[A, B]{First: r1.Value, Second: r2.Value})
	})
}

// Map transforms the value of a successful parse with f.
// Consumption of input is not affected.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return ParserFunc[B](func(input string) Result[B] {
		r := p.Parse(input)
		if !r.Matched {
			return Failure[B](r.Rest)
		}
		return Success(r.Rest, f(r.Value))
	})
}

// Left sequences p1 and p2 like Pair, but keeps only the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Parser[A] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) A {
		return t.First
	})
}

// Right sequences p1 and p2 like Pair, but keeps only the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Parser[B] {
	return Map(Pair(p1, p2), func(t Tuple[A, B]) B {
		return t.Second
	})
}

// Pred succeeds if p succeeds and its value satisfies predicate ok.
func Pred[T any](p Parser[T], ok func(T) bool) Parser[T] {
	return ParserFunc[T](func(input string) Result[T] {
		r := p.Parse(input)
		if r.Matched && ok(r.Value) {
			return r
		}
		return Failure[T](input)
	})
}

// Either tries p1, and if it fails, p2 on the same input.
func Either[T any](p1, p2 Parser[T]) Parser[T] {
	return ParserFunc[T](func(input string) Result[T] {
		if r := p1.Parse(input); r.Matched {
			return r
		}
		if r := p2.Parse(input); r.Matched {
			return r
		}
		return Failure[T](input)
	})
}

// AndThen runs p and then the parser f creates from p's value, on the input
// p has left over. Failure of the second parser is reported with the input
// AndThen has been offered, as with Pair.
func AndThen[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return ParserFunc[B](func(input string) Result[B] {
		r := p.Parse(input)
		if !r.Matched {
			return Failure[B](r.Rest)
		}
		next := f(r.Value).Parse(r.Rest)
		if !next.Matched {
			return Failure[B](input)
		}
		return next
	})
}

// Lazy defers the construction of a parser until it is invoked.
// It is needed for recursive grammars, where a parser refers to itself.
func Lazy[T any](f func() Parser[T]) Parser[T] {
	return ParserFunc[T](func(input string) Result[T] {
		return f().Parse(input)
	})
}

// Trace wraps p and reports each invocation to the core tracer at debug level.
func Trace[T any](name string, p Parser[T]) Parser[T] {
	return ParserFunc[T](func(input string) Result[T] {
		r := p.Parse(input)
		if r.Matched {
			tracer().Debugf("%s: matched %q", name, preview(input[:len(input)-len(r.Rest)]))
		} else {
			tracer().Debugf("%s: no match at %q", name, preview(input))
		}
		return r
	})
}
