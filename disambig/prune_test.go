package disambig

import (
	"regexp"
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

// TestAssociativityLeftRejectsRightBranch builds E -> E '+' E | 'n', marks
// the E+E production left-associative, and checks that on "n+n+n" only the
// left-branching reading ((n+n)+n) survives.
func TestAssociativityLeftRejectsRightBranch(t *testing.T) {
	b := grammar.NewBuilder("Assoc")
	plus := b.LHS("E").N("E").T("+", '+').N("E").End()
	n := b.LHS("E").T("n", 'n').End()
	r := grammar.NewRules().Associate(plus, grammar.LeftAssoc)
	b.WithRules(r)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	f := buildForest(t, g, "n+n+n")
	Prune(f)

	if len(f.Roots) != 1 {
		t.Fatalf("expected exactly one surviving root, got %d", len(f.Roots))
	}
	root := f.Roots[0]
	if root.IsOrNode() {
		t.Fatalf("expected left-assoc pruning to leave exactly one alternative, got %d", len(root.Alternatives))
	}
	alt := root.Alternatives[0]
	last := alt[len(alt)-1]
	if last.Node == nil || last.Node.Prod != n {
		t.Errorf("expected the rightmost child of the surviving alternative to be the base case E->'n' (left-branching), got %v", last)
	}
}

// TestPriorityRejectsLooserOuterOperator builds the classic E -> E+E | E*E |
// N grammar, declares '*' higher priority than '+', and checks that on
// "1+2*3" only the 1+(2*3) reading survives.
func TestPriorityRejectsLooserOuterOperator(t *testing.T) {
	b := grammar.NewBuilder("Prio")
	plus := b.LHS("E").N("E").T("+", '+').N("E").End()
	mul := b.LHS("E").N("E").T("*", '*').N("E").End()
	b.LHS("E").N("N").End()
	b.LHS("N").T("1", '1').End()
	b.LHS("N").T("2", '2').End()
	b.LHS("N").T("3", '3').End()
	r := grammar.NewRules().Priority(mul, plus)
	b.WithRules(r)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	f := buildForest(t, g, "1+2*3")
	Prune(f)

	if len(f.Roots) != 1 {
		t.Fatalf("expected exactly one surviving root (1+(2*3)), got %d", len(f.Roots))
	}
	root := f.Roots[0]
	if root.Prod != plus {
		t.Errorf("expected the surviving root to reduce via E->E+E (the looser operator at the top), got %s", root.Prod)
	}
}

// TestRejectLiteralKillsExactYield builds ID -> ID CHAR | CHAR over the
// alphabet {a,b,c}, installs a literal reject on yield "aaa", and checks
// that the whole forest for "aaa" dies.
func TestRejectLiteralKillsExactYield(t *testing.T) {
	b := grammar.NewBuilder("RejectLit")
	b.LHS("ID").N("ID").N("CHAR").End()
	b.LHS("ID").N("CHAR").End()
	b.LHS("CHAR").T("a", 'a').End()
	b.LHS("CHAR").T("b", 'b').End()
	b.LHS("CHAR").T("c", 'c').End()
	id := b.NonTerminal("ID")
	r := grammar.NewRules().RejectLiteral(id, "aaa")
	b.WithRules(r)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	f := buildForest(t, g, "aaa")
	Prune(f)

	if len(f.Roots) != 0 {
		t.Errorf("expected the reject rule to kill every root spanning \"aaa\", got %d surviving", len(f.Roots))
	}
}

// TestRejectRegexKillsMatchingYield mirrors the above with a regex reject
// on any run of the single character 'c'.
func TestRejectRegexKillsMatchingYield(t *testing.T) {
	b := grammar.NewBuilder("RejectRe")
	b.LHS("ID").N("ID").N("CHAR").End()
	b.LHS("ID").N("CHAR").End()
	b.LHS("CHAR").T("a", 'a').End()
	b.LHS("CHAR").T("b", 'b').End()
	b.LHS("CHAR").T("c", 'c').End()
	id := b.NonTerminal("ID")
	r := grammar.NewRules().RejectRegex(id, regexp.MustCompile(`^c+$`))
	b.WithRules(r)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	f := buildForest(t, g, "ccc")
	Prune(f)

	if len(f.Roots) != 0 {
		t.Errorf("expected the regex reject rule to kill every root spanning \"ccc\", got %d surviving", len(f.Roots))
	}

	// A mixed string not fully matched by ^c+$ should survive untouched.
	f2 := buildForest(t, g, "abc")
	Prune(f2)
	if len(f2.Roots) != 1 {
		t.Errorf("expected \"abc\" to survive the 'c+' reject rule, got %d roots", len(f2.Roots))
	}
}

// TestPreferResolvesDanglingElse builds the classic dangling-else grammar
// and checks that preferring the "if-then" (no else) outer production makes
// the else bind to the nearest enclosing if, as is conventional.
func TestPreferResolvesDanglingElse(t *testing.T) {
	b := grammar.NewBuilder("Dangling")
	ifThen := b.LHS("Stmt").T("if", 'i').T("c", 'c').T("then", 't').N("Stmt").End()
	b.LHS("Stmt").T("if", 'i').T("c", 'c').T("then", 't').N("Stmt").T("else", 'e').N("Stmt").End()
	b.LHS("Stmt").T("o", 'o').End()
	stmt := b.NonTerminal("Stmt")
	r := grammar.NewRules().Prefer(stmt, ifThen)
	b.WithRules(r)
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}

	// "if c then if c then o else o"
	f := buildForest(t, g, "ictictoeo")
	if len(f.Roots) != 2 {
		t.Fatalf("expected the dangling-else input to be genuinely ambiguous before pruning, got %d roots", len(f.Roots))
	}
	Prune(f)

	if len(f.Roots) != 1 {
		t.Fatalf("expected exactly one surviving root after prefer pruning, got %d", len(f.Roots))
	}
	if f.Roots[0].Prod != ifThen {
		t.Errorf("expected the preferred outer production (if-then, no else) to survive, got %s", f.Roots[0].Prod)
	}
}
