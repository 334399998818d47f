package element

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/npillmayer/pcomb"
)

// ErrSyntax is returned by Parse for input which is not a well-formed element.
var ErrSyntax = errors.New("element: syntax error")

var (
	whitespaceChar = pcomb.Pred(pcomb.AnyCharParser, unicode.IsSpace)
	space0         = pcomb.ZeroOrMore(whitespaceChar)
	space1         = pcomb.OneOrMore(whitespaceChar)
)

var elementParser pcomb.Parser[*Element]

func init() {
	elementParser = pcomb.Trace("element", pcomb.Either(singleElement(), parentElement()))
}

// Parser returns the parser for a single element, which may be combined
// with other parsers. Leading or trailing whitespace is not skipped.
func Parser() pcomb.Parser[*Element] {
	return elementParser
}

// Parse parses input as a single element, which may be surrounded by whitespace.
func Parse(input string) (*Element, error) {
	el, err := pcomb.Run(whitespaceWrap(elementParser), input)
	if err != nil {
		tracer().Infof("element: cannot parse input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return el, nil
}

func whitespaceWrap[T any](p pcomb.Parser[T]) pcomb.Parser[T] {
	return pcomb.Right(space0, pcomb.Left(p, space0))
}

// quotedString recognizes text between double quotes. There are no escapes.
func quotedString() pcomb.Parser[string] {
	notQuote := pcomb.Pred(pcomb.AnyCharParser, func(r rune) bool { return r != '"' })
	quoted := pcomb.Right(
		pcomb.MatchLiteral(`"`),
		pcomb.Left(pcomb.ZeroOrMore(notQuote), pcomb.MatchLiteral(`"`)),
	)
	return pcomb.Map(quoted, func(runes []rune) string {
		return string(runes)
	})
}

func attributePair() pcomb.Parser[Attribute] {
	pair := pcomb.Pair(pcomb.IdentifierParser, pcomb.Right(pcomb.MatchLiteral("="), quotedString()))
	return pcomb.Map(pair, func(t pcomb.Tuple[string, string]) Attribute {
		return Attribute{Name: t.First, Value: t.Second}
	})
}

func attributes() pcomb.Parser[[]Attribute] {
	return pcomb.ZeroOrMore(pcomb.Right(space1, attributePair()))
}

// elementStart recognizes '<' name attributes, leaving the tag open.
func elementStart() pcomb.Parser[*Element] {
	start := pcomb.Right(pcomb.MatchLiteral("<"), pcomb.Pair(pcomb.IdentifierParser, attributes()))
	return pcomb.Map(start, func(t pcomb.Tuple[string, []Attribute]) *Element {
		el := &Element{Name: t.First}
		if len(t.Second) > 0 {
			el.Attributes = t.Second
		}
		return el
	})
}

func singleElement() pcomb.Parser[*Element] {
	return pcomb.Left(elementStart(), pcomb.Right(space0, pcomb.MatchLiteral("/>")))
}

func openElement() pcomb.Parser[*Element] {
	return pcomb.Left(elementStart(), pcomb.Right(space0, pcomb.MatchLiteral(">")))
}

func closeElement(name string) pcomb.Parser[string] {
	closing := pcomb.Right(pcomb.MatchLiteral("</"), pcomb.Left(pcomb.IdentifierParser, pcomb.MatchLiteral(">")))
	return pcomb.Pred(closing, func(n string) bool { return n == name })
}

// parentElement recognizes an open tag, its children and the matching close tag.
func parentElement() pcomb.Parser[*Element] {
	child := whitespaceWrap(pcomb.Lazy(func() pcomb.Parser[*Element] { return elementParser }))
	return pcomb.AndThen(openElement(), func(open *Element) pcomb.Parser[*Element] {
		body := pcomb.Left(pcomb.ZeroOrMore(child), pcomb.Right(space0, closeElement(open.Name)))
		return pcomb.Map(body, func(children []*Element) *Element {
			el := *open
			if len(children) > 0 {
				el.Children = children
			}
			return &el
		})
	})
}
