package pcomb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOneOrMore(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := OneOrMore(MatchLiteral("ha"))
	if diff := cmp.Diff(Success("x", []Unit{{}, {}}), p.Parse("hahax")); diff != "" {
		t.Errorf("one-or-more mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Failure[[]Unit]("ahah"), p.Parse("ahah")); diff != "" {
		t.Errorf("one-or-more failure mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Failure[[]Unit](""), p.Parse("")); diff != "" {
		t.Errorf("one-or-more on empty input mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroOrMore(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := ZeroOrMore(MatchLiteral("ha"))
	if diff := cmp.Diff(Success("", []Unit{{}, {}, {}}), p.Parse("hahaha")); diff != "" {
		t.Errorf("zero-or-more mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Success("ahah", []Unit{}), p.Parse("ahah")); diff != "" {
		t.Errorf("zero-or-more without match mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Success("", []Unit{}), p.Parse("")); diff != "" {
		t.Errorf("zero-or-more on empty input mismatch (-want +got):\n%s", diff)
	}
}

// OneOrMore fails exactly when ZeroOrMore yields an empty sequence,
// and ZeroOrMore never fails.
func TestRepetitionDuality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	children := map[string]Parser[string]{
		"identifier": IdentifierParser,
		"spaced":     Left(IdentifierParser, MatchLiteral(" ")),
	}
	inputs := []string{"", " ", "a", "a b c", "a b c ", "1a", "čau bobe", "-"}
	for name, child := range children {
		for _, input := range inputs {
			zero := ZeroOrMore(child).Parse(input)
			one := OneOrMore(child).Parse(input)
			if !zero.Matched {
				t.Errorf("%s: zero-or-more failed on %q", name, input)
			}
			if one.Matched == (len(zero.Value) == 0) {
				t.Errorf("%s: one-or-more on %q is %v, zero-or-more found %d", name, input,
					one.Matched, len(zero.Value))
			}
			if one.Matched {
				if diff := cmp.Diff(zero, one); diff != "" {
					t.Errorf("%s: one-or-more and zero-or-more differ on %q:\n%s", name, input, diff)
				}
			}
		}
	}
}

func TestRepetitionBounds(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ha := MatchLiteral("ha")
	tests := []struct {
		bounds  Range
		input   string
		matched bool
		rest    string
		count   int
	}{
		{Exactly(2), "hahax", true, "x", 2},
		{Exactly(2), "hahahax", false, "hahahax", 0},
		{Between(1, 3), "hahahax", true, "x", 3},
		{Between(1, 3), "hahahahax", false, "hahahahax", 0},
		{Between(2, 3), "hax", false, "hax", 0},
		{AtLeast(3), "hahax", false, "hahax", 0},
		{AtLeast(0), "x", true, "x", 0},
	}
	for i, tc := range tests {
		r := Repetition(ha, tc.bounds).Parse(tc.input)
		if r.Matched != tc.matched || r.Rest != tc.rest || len(r.Value) != tc.count {
			t.Errorf("test #%d: repetition %s on %q = %v, expected matched=%v rest=%q count=%d",
				i, tc.bounds, tc.input, r, tc.matched, tc.rest, tc.count)
		}
	}
}

func TestRepetitionRollsBack(t *testing.T) {
	// the third attempt consumes "<c" before failing on the missing '>'
	tag := Right(MatchLiteral("<"), Left(IdentifierParser, MatchLiteral(">")))
	r := ZeroOrMore(tag).Parse("<a><b><c")
	if diff := cmp.Diff(Success("<c", []string{"a", "b"}), r); diff != "" {
		t.Errorf("repetition should roll back to last success (-want +got):\n%s", diff)
	}
}

func TestRangeString(t *testing.T) {
	if s := AtLeast(1).String(); s != "1.." {
		t.Errorf("expected '1..', have %q", s)
	}
	if s := Between(2, 5).String(); s != "2..5" {
		t.Errorf("expected '2..5', have %q", s)
	}
	if !Exactly(0).Contains(0) || Exactly(0).Contains(1) {
		t.Errorf("Exactly(0) should contain 0 only")
	}
}
