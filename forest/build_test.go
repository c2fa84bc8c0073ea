package forest

import (
	"testing"

	"github.com/nparse/thicket/earley"
	"github.com/nparse/thicket/grammar"
)

func toksOf(s string) []interface{} {
	out := make([]interface{}, len(s))
	for i, r := range s {
		out[i] = r
	}
	return out
}

func buildForest(t *testing.T, g *grammar.Grammar, input string) *Forest {
	t.Helper()
	toks := toksOf(input)
	accept, chart := earley.Recognize(g, toks)
	if !accept {
		t.Fatalf("input %q was not recognized by the grammar", input)
	}
	return Build(g, chart)
}

// S -> S S | 'a', the ambiguous grammar the Catalan-number scenario
// is built on: "aa" has exactly one root node, S(0,2), with a single
// alternative; "aaa" is the shortest input whose root is ambiguous.
func grammarSSorA(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("SSorA")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("a", 'a').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	return g
}

func TestBuildProducesExactlyOneRoot(t *testing.T) {
	g := grammarSSorA(t)
	f := buildForest(t, g, "aaaa")
	if len(f.Roots) != 1 {
		t.Fatalf("expected exactly one root node spanning the whole input, got %d", len(f.Roots))
	}
	root := f.Roots[0]
	if root.I != 0 || root.J != 4 {
		t.Errorf("root span = (%d,%d), want (0,4)", root.I, root.J)
	}
}

func TestBuildPacksAmbiguousSplitsAsOneOrNode(t *testing.T) {
	g := grammarSSorA(t)
	f := buildForest(t, g, "aaa")
	root := f.Roots[0]
	// S(0,3) can be split as S(0,1)+S(1,3) or S(0,2)+S(2,3): the two splits
	// of "aaa" into S S are at position 1 and position 2, so the root should
	// be an OR-node with 2 alternatives.
	if !root.IsOrNode() {
		t.Errorf("expected root to be an OR-node (ambiguous split), got %d alternative(s)", len(root.Alternatives))
	}
	if len(root.Alternatives) != 2 {
		t.Errorf("expected 2 alternatives for the two ways to split \"aaa\", got %d", len(root.Alternatives))
	}
}

func TestBuildHasNoDeadNodesAfterGC(t *testing.T) {
	g := grammarSSorA(t)
	f := buildForest(t, g, "aaaa")
	for _, n := range f.Nodes() {
		if n.IsDead() {
			t.Errorf("found a dead node surviving GC: %s", n)
		}
		if len(n.Alternatives) == 0 {
			t.Errorf("found a live node with zero alternatives: %s", n)
		}
	}
}

func TestBuildUnambiguousGrammarHasNoOrNodes(t *testing.T) {
	b := grammar.NewBuilder("aSb")
	b.LHS("S").T("a", 'a').N("S").End()
	b.LHS("S").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	f := buildForest(t, g, "aaaab")
	for _, n := range f.Nodes() {
		if n.IsOrNode() {
			t.Errorf("unambiguous grammar produced an OR-node: %s", n.DumpAlternatives())
		}
	}
}

func TestBuildLeafYieldMatchesInput(t *testing.T) {
	g := grammarSSorA(t)
	f := buildForest(t, g, "aa")
	root := f.Roots[0]
	yield := root.Yield(f.Input)
	if len(yield) != 2 {
		t.Fatalf("expected root yield of length 2, got %d", len(yield))
	}
	if yield[0] != 'a' || yield[1] != 'a' {
		t.Errorf("root yield = %v, want ['a' 'a']", yield)
	}
}
