/*
Package pcomb is a small parser-combinator library.

Description

Parsers for text grammars are built from small primitive parsers, which are
glued together by combinators. There is no separate grammar compiler and no
generated code: a grammar is a Go value, composed at runtime from functions
of this package.

Every parser implements interface Parser. It is handed a string and tries
to consume a prefix of it. The outcome is a Result, which either carries the
parsed value together with the remaining (unconsumed) input, or signals
failure. A failing parser returns the input it has been offered, unmodified.
There is exactly one kind of failure: "no match at this position". Parsers
never panic on malformed input and they never return Go errors.

   p := pcomb.Pair(pcomb.MatchLiteral("<"), pcomb.IdentifierParser)
   res := p.Parse("<my-first-element/>")
   // res.Rest == "/>", res.Value.Second == "my-first-element"

Input is never copied. Parsers re-slice the string they receive; the only
allocations are for values a parser has to own, like the text of an
identifier or the slice collected by a repetition.

Any function of type func(string) Result[T] may be lifted to a Parser with
ParserFunc or Lift. Combinators treat primitives and composed parsers
identically.

Parsers are stateless and may be shared freely between goroutines.

Combinators

Pair sequences two parsers and returns both values as a Tuple. Left and Right
sequence two parsers as well, but keep only one of the values; they are
used to drop delimiters. Map transforms a parser's value. Repetition applies
a parser as often as possible and checks the number of matches against a
Range; OneOrMore and ZeroOrMore are the common special cases.

If the second parser of a sequence fails, the sequence reports the input it
has been offered itself, not the position where the second parser gave up.
Repetition is all-or-nothing in the same sense.

Repeating a parser which is able to succeed without consuming input will
loop forever. None of the primitives of this package does so, but client
parsers may.

Tracing

Parsers wrapped with Trace report every invocation to the core tracer
(see package github.com/npillmayer/schuko/gtrace). This is meant for
debugging grammars and is a no-op with respect to parsing results.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package pcomb

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// previewLen is the maximum number of bytes of input shown in traces and errors.
const previewLen = 24

// preview shortens input for trace output, without splitting a rune.
func preview(input string) string {
	if len(input) <= previewLen {
		return input
	}
	n := 0
	for i := range input {
		if i > previewLen {
			break
		}
		n = i
	}
	return input[:n] + "…"
}
