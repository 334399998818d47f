package pcomb

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Alphabetic is the range table of runes with Unicode property Alphabetic,
// i.e. letters, letter numbers and other alphabetic marks.
var Alphabetic = rangetable.Merge(unicode.Letter, unicode.Nl, unicode.Other_Alphabetic)

// Alphanumeric is the union of Alphabetic and all numbers (general category N).
var Alphanumeric = rangetable.Merge(Alphabetic, unicode.Number)

// IsAlphabetic reports whether r has the Unicode property Alphabetic.
func IsAlphabetic(r rune) bool {
	return unicode.Is(Alphabetic, r)
}

// IsAlphanumeric reports whether r is alphabetic or numeric.
func IsAlphanumeric(r rune) bool {
	return unicode.Is(Alphanumeric, r)
}

// MatchLiteral creates a parser which recognizes the literal string expected.
// The parser's value is Unit.
//
// Comparison is done on the string content, so a literal will never be
// matched against part of a multi-byte character.
func MatchLiteral(expected string) Parser[Unit] {
	return ParserFunc[Unit](func(input string) Result[Unit] {
		if !strings.HasPrefix(input, expected) {
			return Failure[Unit](input)
		}
		return Success(input[len(expected):], Unit{})
	})
}

// AnyChar recognizes a single rune, which is the parser's value.
// It fails on empty input only.
func AnyChar(input string) Result[rune] {
	if input == "" {
		return Failure[rune](input)
	}
	r, size := utf8.DecodeRuneInString(input)
	return Success(input[size:], r)
}

// Identifier recognizes an identifier: an alphabetic rune followed by any
// number of alphanumeric runes or hyphens. The parser's value is a copy of
// the identifier's text.
//
// Matching is greedy and stops in front of the first rune which cannot be
// part of an identifier.
func Identifier(input string) Result[string] {
	return recognizeText(identifierStart, input)
}

// AnyCharParser and IdentifierParser are AnyChar and Identifier, lifted to
// Parsers to be passed to combinators.
var (
	AnyCharParser    = Lift(AnyChar)
	IdentifierParser = Lift(Identifier)
)

func identifierStart(rec *Recognizer, r rune) NfaStateFn {
	if !IsAlphabetic(r) {
		return DoAbort(rec)
	}
	rec.Consume()
	return identifierRest
}

func identifierRest(rec *Recognizer, r rune) NfaStateFn {
	if r == '-' || IsAlphanumeric(r) {
		rec.Consume()
		return identifierRest
	}
	return DoAccept(rec)
}
