package thicket

import (
	"github.com/nparse/thicket/disambig"
	"github.com/nparse/thicket/earley"
	"github.com/nparse/thicket/enum"
	"github.com/nparse/thicket/forest"
	"github.com/nparse/thicket/grammar"
)

// Parser recognizes and parses input against a fixed, frozen Grammar. A
// Parser is read-only after construction and may be shared across
// concurrently running parses — the grammar it wraps is immutable, and
// every Recognize/Parse call owns its own chart and forest.
type Parser struct {
	g *grammar.Grammar
}

// NewParser wraps an already-built grammar. grammar must be BNF-normalized
// (the only kind grammar.Builder ever produces).
func NewParser(g *grammar.Grammar) *Parser {
	return &Parser{g: g}
}

// Recognize reports whether input is a member of the parser's language. It
// never errors: non-membership is simply false.
func (p *Parser) Recognize(input []Token) bool {
	accept, _ := earley.Recognize(p.g, toTokens(input))
	tracer().Debugf("Recognize: %d token(s), accept=%v", len(input), accept)
	return accept
}

// Parse recognizes input and, if accepted, builds and disambiguates the
// full parse forest. If input is rejected, the returned Forest has
// Count() == 0 and Parse returns ErrNoParse alongside it — this is the
// "ParseFailure, not exceptional" case: callers that only care about
// count can ignore the error and read Forest.Count().
func (p *Parser) Parse(input []Token) (*Forest, error) {
	toks := toTokens(input)
	accept, chart := earley.Recognize(p.g, toks)
	// Building the forest from the chart even on rejection gives a
	// well-formed, empty Forest (zero roots) rather than a nil one, so
	// callers can uniformly call Count()/Trees() regardless of outcome.
	fo := forest.Build(p.g, chart)
	if !accept {
		tracer().Debugf("Parse: %d token(s) rejected, 0 root(s)", len(input))
		return &Forest{inner: fo}, ErrNoParse
	}
	disambig.Prune(fo)
	tracer().Debugf("Parse: %d token(s) accepted, %d root(s) after pruning", len(input), len(fo.Roots))
	return &Forest{inner: fo}, nil
}

func toTokens(input []Token) []interface{} {
	out := make([]interface{}, len(input))
	for i, t := range input {
		out[i] = t
	}
	return out
}

// Forest holds the pruned parse DAG for one parse (with no roots when the
// input was rejected), plus the input and grammar it was built from.
type Forest struct {
	inner *forest.Forest
}

// Count returns the number of surviving distinct parse trees (may be 0).
func (fo *Forest) Count() int {
	n := 0
	it := enum.NewEnumerator(fo.inner)
	for it.Next() {
		n++
	}
	return n
}

// Trees returns a lazy enumerator over every surviving parse tree.
func (fo *Forest) Trees() *enum.Enumerator {
	return enum.NewEnumerator(fo.inner)
}

// UniqueAnnotated returns the single surviving tree, with binder called on
// every node in pre-order, if and only if exactly one tree survived
// disambiguation. binder's return value is recorded into the tree's
// Annotations map, keyed by node, so a caller can attach a semantic action
// result or evaluator closure without threading extra state through its own
// recursion. If count != 1, it returns ErrNotUnique: the caller decides
// whether that is an error or an expected "still ambiguous" state.
func (fo *Forest) UniqueAnnotated(binder func(*enum.Tree, *forest.Node) interface{}) (*enum.Tree, error) {
	it := enum.NewEnumerator(fo.inner)
	if !it.Next() {
		return nil, ErrNotUnique
	}
	tree := it.Tree()
	if it.Next() {
		return nil, ErrNotUnique
	}
	tree.Annotations = make(map[*forest.Node]interface{})
	tree.Walk(func(n *forest.Node) { tree.Annotations[n] = binder(tree, n) }, nil)
	return tree, nil
}
