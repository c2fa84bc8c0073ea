package earley

import (
	"testing"

	"github.com/nparse/thicket/grammar"
)

func toksOf(s string) []interface{} {
	out := make([]interface{}, len(s))
	for i, r := range s {
		out[i] = r
	}
	return out
}

// S -> 'a' S | 'b', a minimal end-to-end scanner/completer example.
func grammarASb(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("aSb")
	b.LHS("S").T("a", 'a').N("S").End()
	b.LHS("S").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	return g
}

func TestRecognizeAcceptsAndRejects(t *testing.T) {
	g := grammarASb(t)
	cases := []struct {
		in     string
		accept bool
	}{
		{"aaaab", true},
		{"b", true},
		{"aaaa", false},  // missing trailing 'b'
		{"ab", true},
		{"", false}, // S is not nullable here
	}
	for _, c := range cases {
		accept, _ := Recognize(g, toksOf(c.in))
		if accept != c.accept {
			t.Errorf("Recognize(%q) = %v, want %v", c.in, accept, c.accept)
		}
	}
}

func TestRecognizeNullableNonTerminal(t *testing.T) {
	// A -> 'a' A | epsilon ; S -> A 'b'. A is nullable, so "b" alone
	// must be accepted (A derives epsilon).
	b := grammar.NewBuilder("Nullable")
	b.StartSymbol("S")
	b.LHS("A").Epsilon()
	b.LHS("A").T("a", 'a').N("A").End()
	b.LHS("S").N("A").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	for _, in := range []string{"b", "ab", "aaab"} {
		accept, _ := Recognize(g, toksOf(in))
		if !accept {
			t.Errorf("Recognize(%q) = false, want true", in)
		}
	}
	accept, _ := Recognize(g, toksOf("a"))
	if accept {
		t.Errorf("Recognize(\"a\") should be rejected: missing trailing 'b'")
	}
}

func TestRecognizeWildcard(t *testing.T) {
	// S -> · 'x', the wildcard matches any single leading token.
	b := grammar.NewBuilder("Wild")
	b.LHS("S").Any().T("x", 'x').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	for _, in := range []string{"ax", "1x", " x"} {
		accept, _ := Recognize(g, toksOf(in))
		if !accept {
			t.Errorf("Recognize(%q) = false, want true (wildcard should match any leading token)", in)
		}
	}
	accept, _ := Recognize(g, toksOf("xa"))
	if accept {
		t.Errorf("Recognize(\"xa\") should be rejected: trailing token is not 'x'")
	}
}

func TestRecognizeEpsilonStar(t *testing.T) {
	// S -> 'a' S | epsilon, accepts a*, including the empty string.
	b := grammar.NewBuilder("AStar")
	b.LHS("S").Epsilon()
	b.LHS("S").T("a", 'a').N("S").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	for _, in := range []string{"", "a", "aaaaa"} {
		accept, _ := Recognize(g, toksOf(in))
		if !accept {
			t.Errorf("Recognize(%q) = false, want true", in)
		}
	}
}
