package enum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nparse/thicket/earley"
	"github.com/nparse/thicket/forest"
	"github.com/nparse/thicket/grammar"
)

func toksOf(s string) []interface{} {
	out := make([]interface{}, len(s))
	for i, r := range s {
		out[i] = r
	}
	return out
}

func buildForest(t *testing.T, g *grammar.Grammar, input string) *forest.Forest {
	t.Helper()
	toks := toksOf(input)
	accept, chart := earley.Recognize(g, toks)
	if !accept {
		t.Fatalf("input %q was not recognized by the grammar", input)
	}
	return forest.Build(g, chart)
}

// treeSignature renders a tree's exact shape (which alternative was chosen
// at every OR-node, plus every leaf token) so that two enumerated trees can
// be compared for accidental duplication.
func treeSignature(tree *Tree) string {
	var b strings.Builder
	var rec func(n *forest.Node)
	rec = func(n *forest.Node) {
		fmt.Fprintf(&b, "(%s@%d,%d:", n.Prod, n.I, n.J)
		for _, c := range tree.Children(n) {
			if c.Node != nil {
				rec(c.Node)
			} else {
				fmt.Fprintf(&b, "%v", c.Leaf.Token)
			}
		}
		b.WriteString(")")
	}
	rec(tree.Root)
	return b.String()
}

// S -> S S | 'a', the Catalan-number ambiguity scenario: "aaaa" (4
// leaves) should enumerate exactly C(3) = 5 distinct binary-tree shapes.
func grammarCatalan(t *testing.T) *grammar.Grammar {
	b := grammar.NewBuilder("Catalan")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").T("a", 'a').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	return g
}

func TestEnumerateCatalanFive(t *testing.T) {
	g := grammarCatalan(t)
	f := buildForest(t, g, "aaaa")

	it := NewEnumerator(f)
	seen := make(map[string]bool)
	count := 0
	for it.Next() {
		tree := it.Tree()
		sig := treeSignature(tree)
		if seen[sig] {
			t.Fatalf("tree enumerated twice: %s", sig)
		}
		seen[sig] = true
		count++
		if count > 10 {
			t.Fatalf("enumerator did not terminate after 10 trees")
		}
	}
	if count != 5 {
		t.Errorf("expected 5 distinct parses of \"aaaa\" under S -> S S | 'a', got %d", count)
	}
}

// TestEnumerateDisjointOrNodesCartesianProduct builds a root production
// combining two independently-ambiguous subtrees (A over "aaa", B over
// "bbb", each individually ambiguous with Catalan(2) = 2 shapes) and checks
// that the enumerator produces the full 2x2 = 4 cartesian product, with
// every combination distinct.
func TestEnumerateDisjointOrNodesCartesianProduct(t *testing.T) {
	b := grammar.NewBuilder("Disjoint")
	b.LHS("Root").N("A").N("B").End()
	b.LHS("A").N("A").N("A").End()
	b.LHS("A").T("a", 'a').End()
	b.LHS("B").N("B").N("B").End()
	b.LHS("B").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	f := buildForest(t, g, "aaabbb")
	it := NewEnumerator(f)
	seen := make(map[string]bool)
	count := 0
	for it.Next() {
		sig := treeSignature(it.Tree())
		if seen[sig] {
			t.Fatalf("tree enumerated twice: %s", sig)
		}
		seen[sig] = true
		count++
		if count > 20 {
			t.Fatalf("enumerator did not terminate after 20 trees")
		}
	}
	if count != 4 {
		t.Errorf("expected the 2x2 cartesian product of independent ambiguities, got %d trees", count)
	}
}

// TestEnumeratedTreesAreStructurallyLegal checks that every enumerated tree
// rooted at the start symbol spans the whole input and that every internal
// node's span is consistent with its children's spans and the original
// input tokens.
func TestEnumeratedTreesAreStructurallyLegal(t *testing.T) {
	g := grammarCatalan(t)
	input := "aaaa"
	f := buildForest(t, g, input)
	toks := toksOf(input)

	it := NewEnumerator(f)
	for it.Next() {
		tree := it.Tree()
		if tree.Root.Prod.LHS != g.Start() {
			t.Fatalf("root production's LHS is not the grammar's start symbol")
		}
		if tree.Root.I != 0 || tree.Root.J != len(toks) {
			t.Fatalf("root span = (%d,%d), want (0,%d)", tree.Root.I, tree.Root.J, len(toks))
		}
		var check func(n *forest.Node)
		check = func(n *forest.Node) {
			if n.I > n.J {
				t.Errorf("node %s has inverted span", n)
			}
			cursor := n.I
			for _, c := range tree.Children(n) {
				if c.I() != cursor {
					t.Errorf("child of %s starts at %d, expected contiguous cursor %d", n, c.I(), cursor)
				}
				cursor = c.J()
				if c.Node != nil {
					check(c.Node)
				} else if toks[c.Leaf.I] != c.Leaf.Token {
					t.Errorf("leaf token %v at position %d does not match input token %v", c.Leaf.Token, c.Leaf.I, toks[c.Leaf.I])
				}
			}
			if len(tree.Children(n)) > 0 && cursor != n.J {
				t.Errorf("node %s children end at %d, expected %d", n, cursor, n.J)
			}
		}
		check(tree.Root)
	}
}

// TestEnumeratorResetReplaysFromTheStart checks that Reset lets the same
// Enumerator be walked a second time, reproducing the same tree sequence.
func TestEnumeratorResetReplaysFromTheStart(t *testing.T) {
	g := grammarCatalan(t)
	f := buildForest(t, g, "aaaa")

	it := NewEnumerator(f)
	var first []string
	for it.Next() {
		first = append(first, treeSignature(it.Tree()))
	}

	it.Reset()
	var second []string
	for it.Next() {
		second = append(second, treeSignature(it.Tree()))
	}

	if len(first) != len(second) {
		t.Fatalf("replayed enumeration produced %d trees, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("tree %d differs after Reset: %s vs %s", i, first[i], second[i])
		}
	}
}

// TestTreeBeforeNextIsBranchPointerError checks the misuse guard: calling
// Tree() before any successful Next() returns nil rather than panicking
// (panic-on-reenumerate-without-reset is off by default).
func TestTreeBeforeNextIsBranchPointerError(t *testing.T) {
	g := grammarCatalan(t)
	f := buildForest(t, g, "aaaa")
	it := NewEnumerator(f)
	if tree := it.Tree(); tree != nil {
		t.Errorf("expected Tree() called before Next() to return nil, got %v", tree)
	}
}
